package workforce

import (
	"reflect"
	"strings"
	"testing"

	"github.com/utilboard/utilboard/internal/seed"
	"github.com/utilboard/utilboard/internal/util"
)

func TestService_ResourceDetail(t *testing.T) {
	svc := newTestService(t)

	t.Run("Deterministic", func(t *testing.T) {
		a, ok := svc.ResourceDetail("nyc-mkt-mobile-res-3")
		if !ok {
			t.Fatal("expected resource to exist")
		}
		b, _ := newTestService(t).ResourceDetail("nyc-mkt-mobile-res-3")
		if !reflect.DeepEqual(a, b) {
			t.Error("expected identical details across services")
		}
	})

	t.Run("Unknown resource", func(t *testing.T) {
		d, ok := svc.ResourceDetail("nyc-fin-core-res-99")
		if ok || d != nil {
			t.Errorf("expected nil, false; got %v, %v", d, ok)
		}
	})

	t.Run("Profile fields", func(t *testing.T) {
		d, ok := svc.ResourceDetail("london-gov-digital-res-0")
		if !ok {
			t.Fatal("expected resource to exist")
		}
		if d.Location != "London" {
			t.Errorf("location = %s, want London", d.Location)
		}
		wantEmail := strings.ToLower(strings.ReplaceAll(d.Name, " ", ".")) + "@" + seed.EmailDomain
		if d.Email != wantEmail {
			t.Errorf("email = %s, want %s", d.Email, wantEmail)
		}
		if !reflect.DeepEqual(d.Skills, seed.RoleSkills[d.Role]) {
			t.Errorf("skills for %s = %v", d.Role, d.Skills)
		}
		if len(d.Certifications) > 2 {
			t.Errorf("expected at most 2 certifications, got %d", len(d.Certifications))
		}
		if n := len(d.Experience); n < 2 || n > 4 {
			t.Errorf("expected 2-4 experience entries, got %d", n)
		}
		for i, e := range d.Experience {
			if !strings.HasPrefix(e.ProjectName, e.Client+" ") {
				t.Errorf("experience %d name %q does not start with client %q", i, e.ProjectName, e.Client)
			}
		}
	})

	t.Run("Allocations", func(t *testing.T) {
		for _, e := range svc.AllResources() {
			d, ok := svc.ResourceDetail(e.ID)
			if !ok {
				t.Fatalf("directory resource %s has no detail", e.ID)
			}

			primary := d.CurrentAllocations[0]
			if primary.ProjectID != e.ProjectID || primary.HoursPerWeek != d.HoursPerWeek {
				t.Errorf("%s: primary allocation %+v", e.ID, primary)
			}

			switch {
			case d.HoursPerWeek >= 40:
				if len(d.CurrentAllocations) != 1 || d.AvailableHours != 0 {
					t.Errorf("%s: full-time resource has %d allocations, %dh available",
						e.ID, len(d.CurrentAllocations), d.AvailableHours)
				}
			case util.IsEven(e.ID):
				if len(d.CurrentAllocations) != 2 {
					t.Fatalf("%s: expected a secondary allocation", e.ID)
				}
				if d.CurrentAllocations[1].ProjectID == e.ProjectID {
					t.Errorf("%s: secondary allocation repeats the home project", e.ID)
				}
				if d.TotalAllocatedHours != 40 || d.AvailableHours != 0 {
					t.Errorf("%s: total %d available %d", e.ID, d.TotalAllocatedHours, d.AvailableHours)
				}
			default:
				if len(d.CurrentAllocations) != 1 || d.AvailableHours != 40-d.HoursPerWeek {
					t.Errorf("%s: expected %dh available, got %d", e.ID, 40-d.HoursPerWeek, d.AvailableHours)
				}
			}
		}
	})
}

func TestCertificationsFor(t *testing.T) {
	tests := []struct {
		code int
		want []string
	}{
		{110, []string{seed.Certifications[1], seed.Certifications[4]}},
		{115, []string{seed.Certifications[2], seed.Certifications[5]}},
		{108, []string{seed.Certifications[0], seed.Certifications[3]}},
	}

	for _, tt := range tests {
		if got := certificationsFor(tt.code); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("certificationsFor(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestSkillsFor_UnknownRole(t *testing.T) {
	got := skillsFor("Astronaut")
	if !reflect.DeepEqual(got, seed.RoleSkills[seed.DefaultRole]) {
		t.Errorf("expected developer skills, got %v", got)
	}
}
