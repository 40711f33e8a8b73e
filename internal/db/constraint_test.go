package db

import (
	"strings"
	"testing"
)

func TestConstraintAllowsCancel(t *testing.T) {
	cases := []struct {
		name       string
		definition string
		want       bool
	}{
		{
			name:       "missing constraint",
			definition: "",
			want:       false,
		},
		{
			name:       "stale three-value constraint",
			definition: "CHECK (((status)::text = ANY ((ARRAY['confirm'::character varying, 'decline'::character varying, 'pending'::character varying])::text[])))",
			want:       false,
		},
		{
			name:       "current four-value constraint",
			definition: "CHECK (((status)::text = ANY ((ARRAY['confirm'::character varying, 'decline'::character varying, 'pending'::character varying, 'cancel'::character varying])::text[])))",
			want:       true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := constraintAllowsCancel(tc.definition); got != tc.want {
				t.Fatalf("constraintAllowsCancel(%q) = %v, want %v", tc.definition, got, tc.want)
			}
		})
	}
}

func TestAppointmentStatusCheckSQL(t *testing.T) {
	sql := appointmentStatusCheckSQL()

	for _, value := range []string{"'confirm'", "'decline'", "'pending'", "'cancel'"} {
		if !strings.Contains(sql, value) {
			t.Fatalf("check SQL missing %s: %s", value, sql)
		}
	}
	if !strings.Contains(sql, appointmentStatusConstraint) {
		t.Fatalf("check SQL missing constraint name: %s", sql)
	}

	// The rebuilt definition must itself pass the inspection, otherwise the
	// reconciliation would never settle.
	if !constraintAllowsCancel(sql) {
		t.Fatal("rebuilt constraint does not satisfy its own marker check")
	}
}
