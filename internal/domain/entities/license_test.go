package entities

import (
	"errors"
	"testing"
	"time"
)

func TestLicense_CheckUsable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	active := License{OwnerID: "u-1", Status: LicenseStatusActive, PDFsGenerated: 3, PDFLimit: 10, ExpiresAt: now.Add(24 * time.Hour)}

	cases := []struct {
		name   string
		mutate func(l *License)
		want   error
	}{
		{name: "usable", mutate: func(l *License) {}},
		{name: "suspended", mutate: func(l *License) { l.Status = LicenseStatusSuspended }, want: ErrLicenseInactive},
		{name: "unknown status", mutate: func(l *License) { l.Status = "" }, want: ErrLicenseInactive},
		{name: "status expired", mutate: func(l *License) { l.Status = LicenseStatusExpired }, want: ErrLicenseExpired},
		{name: "past expiry", mutate: func(l *License) { l.ExpiresAt = now.Add(-time.Second) }, want: ErrLicenseExpired},
		{name: "expiry equal to now", mutate: func(l *License) { l.ExpiresAt = now }},
		{name: "quota reached", mutate: func(l *License) { l.PDFsGenerated = 10 }, want: ErrLicenseQuotaExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := active
			tc.mutate(&l)
			err := l.CheckUsable(now)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) || !errors.Is(err, ErrLicense) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLicense_Remaining(t *testing.T) {
	if got := (License{PDFLimit: 5, PDFsGenerated: 2}).Remaining(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := (License{PDFLimit: 5, PDFsGenerated: 9}).Remaining(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestLookupLicensePlan(t *testing.T) {
	p, ok := LookupLicensePlan("profissional")
	if !ok || p.PDFLimit != 200 || p.Price.StringFixed(2) != "59.90" {
		t.Fatalf("unexpected plan: %+v", p)
	}
	if _, ok := LookupLicensePlan("gratis"); ok {
		t.Fatalf("expected unknown plan")
	}
	plans := LicensePlans()
	if len(plans) != 3 || plans[0].ID != "basico" || plans[2].ID != "empresarial" {
		t.Fatalf("unexpected order: %+v", plans)
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	if PaymentStatusFromProvider("approved") != PaymentStatusAprovado {
		t.Fatalf("approved should map to aprovado")
	}
	if PaymentStatusFromProvider("rejected") != PaymentStatusNegado {
		t.Fatalf("rejected should map to negado")
	}
	if PaymentStatusFromProvider("in_process") != PaymentStatusPendente {
		t.Fatalf("in_process should map to pendente")
	}
}

func TestLicensePlan_Activate(t *testing.T) {
	plan, _ := LookupLicensePlan("profissional")
	now := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	lic := plan.Activate("user-1", now)

	if lic.Status != LicenseStatusActive || lic.PDFsGenerated != 0 || lic.PDFLimit != 200 || lic.Plan != "profissional" {
		t.Fatalf("unexpected license: %+v", lic)
	}
	if want := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC); !lic.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, lic.ExpiresAt)
	}
	if err := lic.CheckUsable(now); err != nil {
		t.Fatalf("fresh license must be usable: %v", err)
	}
}
