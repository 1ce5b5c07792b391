package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Admin: manage everything operational plus RBAC grants
		{RoleAdmin, DomainSys, ResourceUser, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceClient, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceTherapist, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceBranch, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceService, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceScheduleEntry, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceBlockedDate, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAvailability, ActionRead, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAttachment, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceNotification, ActionManage, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAudit, ActionRead, EffectAllow},
		{RoleAdmin, DomainSys, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleAdmin, DomainSys, ResourceRBAC, ActionRevoke, EffectAllow},

		// Reception: front-desk work, no catalog or user management
		{RoleReception, DomainSys, ResourceClient, ActionManage, EffectAllow},
		{RoleReception, DomainSys, ResourceTherapist, ActionRead, EffectAllow},
		{RoleReception, DomainSys, ResourceTherapist, ActionList, EffectAllow},
		{RoleReception, DomainSys, ResourceBranch, ActionRead, EffectAllow},
		{RoleReception, DomainSys, ResourceBranch, ActionList, EffectAllow},
		{RoleReception, DomainSys, ResourceService, ActionRead, EffectAllow},
		{RoleReception, DomainSys, ResourceService, ActionList, EffectAllow},
		{RoleReception, DomainSys, ResourceAvailability, ActionRead, EffectAllow},
		{RoleReception, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleReception, DomainSys, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleReception, DomainSys, ResourceAttachment, ActionCreate, EffectAllow},
		{RoleReception, DomainSys, ResourceAttachment, ActionRead, EffectAllow},
		{RoleReception, DomainSys, ResourceAttachment, ActionList, EffectAllow},

		// Therapist: read their schedule and appointments, block their own dates
		{RoleTherapist, DomainSys, ResourceClient, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceClient, ActionList, EffectAllow},
		{RoleTherapist, DomainSys, ResourceScheduleEntry, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceScheduleEntry, ActionList, EffectAllow},
		{RoleTherapist, DomainSys, ResourceBlockedDate, ActionManage, EffectAllow},
		{RoleTherapist, DomainSys, ResourceAvailability, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleTherapist, DomainSys, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleTherapist, DomainSys, ResourceAttachment, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignStaffRole assigns a staff role (admin, therapist, reception) to a user
// in the sys domain. Use when creating users or changing their role.
func AssignStaffRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleAdmin, RoleTherapist, RoleReception:
		// valid staff roles that can be assigned programmatically
	case RoleSysSuperAdmin:
		// superadmin is valid but should be assigned with caution
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveStaffRole removes a staff role from a user in the sys domain.
func RemoveStaffRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// StaffRoleForUserRole maps a users.role column value to its Casbin role.
func StaffRoleForUserRole(userRole string) (Role, bool) {
	r, ok := UserRoleToRBACRole[userRole]
	return r, ok
}

// SyncUserRole replaces the user's staff roles in the sys domain so that the
// only staff role they hold matches the given users.role value.
func SyncUserRole(ctx context.Context, auth IAuthorization, userID, userRole string) error {
	target, ok := StaffRoleForUserRole(userRole)
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	current, err := auth.GetRolesForUserInDomain(ctx, subject, DomainSys)
	if err != nil {
		return err
	}
	for _, r := range current {
		if r == target || r == RoleSysSuperAdmin {
			continue
		}
		if _, err := auth.RemoveRoleForUserInDomain(ctx, subject, r, DomainSys); err != nil {
			return err
		}
	}
	_, err = auth.AddRoleForUserInDomain(ctx, subject, target, DomainSys)
	return err
}
