package policy_test

import (
	"testing"

	"github.com/Arunkumar3624/EMS/internal/domain"
	"github.com/Arunkumar3624/EMS/internal/policy"
)

func identityWithEmployee(userID, employeeID int64) policy.Identity {
	return policy.Identity{UserID: userID, EmployeeID: &employeeID}
}

func TestIsAdmin(t *testing.T) {
	if (policy.Identity{}).IsAdmin() {
		t.Error("plain identity must not be admin")
	}
	if !(policy.Identity{IsStaff: true}).IsAdmin() {
		t.Error("staff identity must be admin")
	}
	if !(policy.Identity{IsSuperuser: true}).IsAdmin() {
		t.Error("superuser identity must be admin")
	}
}

func TestOwnsEmployee(t *testing.T) {
	owner := identityWithEmployee(1, 10)

	if !policy.OwnsEmployee(owner, 10) {
		t.Error("expected ownership of own profile")
	}
	if policy.OwnsEmployee(owner, 11) {
		t.Error("unexpected ownership of foreign profile")
	}
	if policy.OwnsEmployee(policy.Identity{UserID: 1}, 10) {
		t.Error("identity without profile owns nothing")
	}
}

func TestOwnsEmployee_NoAdminBypass(t *testing.T) {
	admin := policy.Identity{UserID: 1, IsStaff: true}

	// Владение строгое: административные права его не дают
	if policy.OwnsEmployee(admin, 10) {
		t.Error("admin must not own foreign profile")
	}
	if !policy.AdminOrOwner(admin, 10) {
		t.Error("AdminOrOwner must allow admin")
	}
}

func TestCanModifyEmployee(t *testing.T) {
	emp := &domain.Employee{ID: 10, UserID: 5}

	if !policy.CanModifyEmployee(policy.Identity{UserID: 5}, emp) {
		t.Error("owning account must modify its profile")
	}
	if policy.CanModifyEmployee(policy.Identity{UserID: 6}, emp) {
		t.Error("foreign account must not modify the profile")
	}
	if !policy.CanModifyEmployee(policy.Identity{UserID: 6, IsStaff: true}, emp) {
		t.Error("admin must modify any profile")
	}
}

func TestCanMutateAttendance(t *testing.T) {
	att := &domain.Attendance{ID: 1, EmployeeID: 10}

	if !policy.CanMutateAttendance(identityWithEmployee(1, 10), att) {
		t.Error("owner must mutate own attendance")
	}
	if policy.CanMutateAttendance(identityWithEmployee(2, 11), att) {
		t.Error("foreign employee must not mutate attendance")
	}
	if !policy.CanMutateAttendance(policy.Identity{IsSuperuser: true}, att) {
		t.Error("admin must mutate any attendance")
	}
}

func TestPerformancePolicies(t *testing.T) {
	perf := &domain.Performance{ID: 1, EmployeeID: 10}
	owner := identityWithEmployee(1, 10)
	stranger := identityWithEmployee(2, 11)
	admin := policy.Identity{IsStaff: true}

	if !policy.CanReadPerformance(owner, perf) {
		t.Error("owner must read own review")
	}
	if policy.CanReadPerformance(stranger, perf) {
		t.Error("stranger must not read the review")
	}
	if !policy.CanReadPerformance(admin, perf) {
		t.Error("admin must read any review")
	}

	// Запись оценок - только административная операция
	if policy.CanManagePerformance(owner) {
		t.Error("owner must not manage reviews")
	}
	if !policy.CanManagePerformance(admin) {
		t.Error("admin must manage reviews")
	}
}

func TestCanListUsers(t *testing.T) {
	if policy.CanListUsers(identityWithEmployee(1, 10)) {
		t.Error("regular employee must not list accounts")
	}
	if !policy.CanListUsers(policy.Identity{IsStaff: true}) {
		t.Error("admin must list accounts")
	}
}
