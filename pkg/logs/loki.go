package logs

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/carlosmariath/painel-clinica-sub001/config"
)

// lokiWriter pushes one JSON log line per Write to Loki's push API.
// Kept as a plain HTTP writer so no Loki client dependency is needed.
type lokiWriter struct {
	endpoint string
	username string
	password string
	client   *http.Client
	labels   string // LogQL label set, e.g. {service="painel-clinica",env="production"}
}

func newLokiHandler(cfg *config.Config, level slog.Level) slog.Handler {
	lw := &lokiWriter{
		endpoint: cfg.Logging.Output.Loki.Endpoint + "/loki/api/v1/push",
		username: cfg.Logging.Output.Loki.Username,
		password: cfg.Logging.Output.Loki.Password,
		client:   &http.Client{Timeout: 3 * time.Second},
		labels: fmt.Sprintf(`{service="%s",env="%s"}`,
			cfg.Observability.ServiceName, cfg.Server.Environment),
	}
	return slog.NewJSONHandler(lw, &slog.HandlerOptions{Level: level})
}

func (lw *lokiWriter) Write(p []byte) (n int, err error) {
	line := strings.TrimRight(string(p), "\n")

	payload := fmt.Sprintf(`{"streams":[{"stream":%s,"values":[["%d",%q]]}]}`,
		labelsToJSON(lw.labels),
		time.Now().UnixNano(),
		line,
	)

	req, err := http.NewRequest(http.MethodPost, lw.endpoint, strings.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lw.username != "" {
		req.SetBasicAuth(lw.username, lw.password)
	}

	resp, err := lw.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return len(p), nil
}

// labelsToJSON converts {k="v",k2="v2"} into a JSON object for the
// stream field of the push payload.
func labelsToJSON(labels string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(labels, "{"), "}")
	var sb strings.Builder
	sb.WriteString("{")
	for i, part := range strings.Split(s, ",") {
		kv := strings.SplitN(part, "=", 2)
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`"` + strings.TrimSpace(kv[0]) + `":` + kv[1])
	}
	sb.WriteString("}")
	return sb.String()
}
