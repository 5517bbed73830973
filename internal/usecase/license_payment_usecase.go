package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase/interfaces"
)

var (
	ErrLicensePaymentNotFound         = errors.New("license payment not found")
	ErrInvalidPlan                    = errors.New("invalid license plan")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ILicensePaymentUseCase sells license plans.
//
// An approved payment activates the plan on the owner's license right away;
// pending or rejected payments are only recorded.
type ILicensePaymentUseCase interface {
	Purchase(ctx context.Context, ownerID, planID string, mpPayload json.RawMessage) (entities.LicensePayment, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.LicensePayment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.LicensePayment, error)
}

type LicensePaymentOptions struct {
	// MockMode relaxes payload checks; the gateway is expected to approve on its own.
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

type LicensePaymentUseCase struct {
	repo     interfaces.ILicensePaymentRepository
	licenses interfaces.ILicenseRepository
	gateway  interfaces.IPaymentGateway
	opts     LicensePaymentOptions

	now func() time.Time
}

var _ ILicensePaymentUseCase = (*LicensePaymentUseCase)(nil)

func NewLicensePaymentUseCase(repo interfaces.ILicensePaymentRepository, licenses interfaces.ILicenseRepository, gateway interfaces.IPaymentGateway, opts LicensePaymentOptions) *LicensePaymentUseCase {
	return &LicensePaymentUseCase{
		repo:     repo,
		licenses: licenses,
		gateway:  gateway,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *LicensePaymentUseCase) Purchase(ctx context.Context, ownerID, planID string, mpPayload json.RawMessage) (entities.LicensePayment, error) {
	log.Printf("[payment][usecase] purchase start owner_id=%q plan=%q payload_len=%d", ownerID, planID, len(mpPayload))
	mockMode := u.opts.MockMode
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.LicensePayment{}, ErrInvalidOwnerID
	}
	plan, ok := entities.LookupLicensePlan(strings.ToLower(strings.TrimSpace(planID)))
	if !ok {
		log.Printf("[payment][usecase] unknown plan owner_id=%s plan=%q", ownerID, planID)
		return entities.LicensePayment{}, ErrInvalidPlan
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload owner_id=%s", ownerID)
			return entities.LicensePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured owner_id=%s", ownerID)
		return entities.LicensePayment{}, ErrPaymentGatewayNotConfigured
	}

	var form checkoutForm
	if err := json.Unmarshal(mpPayload, &form); err != nil {
		log.Printf("[payment][usecase] payload is not an object owner_id=%s err=%v", ownerID, err)
		if !mockMode {
			return entities.LicensePayment{}, ErrInvalidMPPayload
		}
		form = checkoutForm{}
	}
	charge := form.charge(ownerID, plan)
	if !mockMode {
		if strings.TrimSpace(charge.PaymentMethodID) == "" {
			log.Printf("[payment][usecase] missing payment_method_id owner_id=%s", ownerID)
			return entities.LicensePayment{}, ErrInvalidMPPayload
		}
		u.mapSandboxPayer(&charge.Payer)
		u.ensurePayerDefaults(&charge.Payer)
		if !charge.Payer.Identified() {
			log.Printf("[payment][usecase] missing/invalid payer owner_id=%s", ownerID)
			return entities.LicensePayment{}, ErrInvalidMPPayload
		}
	}

	log.Printf("[payment][usecase] calling payment gateway owner_id=%s plan=%s amount=%s", ownerID, plan.ID, charge.Amount.StringFixed(2))
	receipt, err := u.gateway.CreatePayment(ctx, charge)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed owner_id=%s err=%v", ownerID, err)
		switch {
		case isGatewayCustomerNotFound(err):
			return entities.LicensePayment{}, ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return entities.LicensePayment{}, ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return entities.LicensePayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.LicensePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.LicensePayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success owner_id=%s provider_payment_id=%s provider_status=%s", ownerID, receipt.ProviderPaymentID, receipt.ProviderStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(receipt.Raw, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed owner_id=%s err=%v", ownerID, err)
	}

	now := u.now()
	p := entities.LicensePayment{
		ID:           receipt.ProviderPaymentID,
		OwnerID:      ownerID,
		Plan:         plan.ID,
		Amount:       plan.Price,
		Date:         now,
		Status:       entities.PaymentStatusFromProvider(receipt.ProviderStatus),
		MPPayloadRaw: receipt.Raw,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed owner_id=%s payment_id=%s err=%v", ownerID, p.ID, err)
		return entities.LicensePayment{}, err
	}

	if created.Status == entities.PaymentStatusAprovado {
		lic, err := u.licenses.Save(ctx, plan.Activate(ownerID, now))
		if err != nil {
			log.Printf("[payment][usecase] license activation failed owner_id=%s payment_id=%s err=%v", ownerID, created.ID, err)
			return entities.LicensePayment{}, err
		}
		log.Printf("[payment][usecase] license activated owner_id=%s plan=%s limit=%d expires_at=%s", ownerID, lic.Plan, lic.PDFLimit, lic.ExpiresAt.Format(time.RFC3339))
	}

	log.Printf("[payment][usecase] purchase success owner_id=%s payment_id=%s status=%s", ownerID, created.ID, created.Status)
	return created, nil
}

func (u *LicensePaymentUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.LicensePayment, error) {
	ownerID = strings.TrimSpace(ownerID)
	id = strings.TrimSpace(id)
	if ownerID == "" {
		return entities.LicensePayment{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.LicensePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LicensePayment{}, err
	}
	if p.ID == "" || p.OwnerID != ownerID {
		return entities.LicensePayment{}, ErrLicensePaymentNotFound
	}
	return p, nil
}

func (u *LicensePaymentUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.LicensePayment, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

func (u *LicensePaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

// checkoutForm is the part of the Mercado Pago checkout form forwarded to the provider.
// Amounts and references sent by the caller are not read.
type checkoutForm struct {
	PaymentMethodID string        `json:"payment_method_id"`
	Token           string        `json:"token"`
	Installments    int           `json:"installments"`
	IssuerID        looseString   `json:"issuer_id"`
	Description     string        `json:"description"`
	Payer           checkoutPayer `json:"payer"`
}

type checkoutPayer struct {
	ID             looseString `json:"id"`
	Type           string      `json:"type"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Identification struct {
		Type   string `json:"type"`
		Number string `json:"number"`
	} `json:"identification"`
}

// charge prices the form against the catalog plan.
func (f checkoutForm) charge(ownerID string, plan entities.LicensePlan) entities.PaymentCharge {
	description := strings.TrimSpace(f.Description)
	if description == "" {
		description = fmt.Sprintf("Licença %s", plan.Name)
	}
	return entities.PaymentCharge{
		PlanID:            plan.ID,
		Amount:            plan.Price,
		ExternalReference: ownerID + ":" + plan.ID,
		Description:       description,
		PaymentMethodID:   strings.TrimSpace(f.PaymentMethodID),
		Token:             strings.TrimSpace(f.Token),
		Installments:      f.Installments,
		IssuerID:          string(f.IssuerID),
		Payer: entities.PaymentPayer{
			ID:        string(f.Payer.ID),
			Type:      strings.TrimSpace(f.Payer.Type),
			Email:     strings.TrimSpace(f.Payer.Email),
			FirstName: strings.TrimSpace(f.Payer.FirstName),
			LastName:  strings.TrimSpace(f.Payer.LastName),
			DocType:   strings.TrimSpace(f.Payer.Identification.Type),
			DocNumber: strings.TrimSpace(f.Payer.Identification.Number),
		},
	}
}

// looseString accepts ids the checkout sends either as JSON strings or numbers.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*s = ""
	case strings.HasPrefix(raw, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(strings.TrimSpace(v))
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*s = looseString(n.String())
	}
	return nil
}

func (u *LicensePaymentUseCase) ensurePayerDefaults(p *entities.PaymentPayer) {
	if p.Type == "" {
		p.Type = "customer"
	}
	// Fill email only when both id and email are missing.
	if p.Identified() {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		p.Email = email
	} else if u.sandbox() {
		p.Email = "test_user_br@testuser.com"
	}
}

// mapSandboxPayer swaps the configured sandbox test user id for its email, which is
// what the sandbox accepts.
func (u *LicensePaymentUseCase) mapSandboxPayer(p *entities.PaymentPayer) {
	if p.ID == "" || p.Email != "" || !u.sandbox() {
		return
	}
	configuredUserID := strings.TrimSpace(u.opts.TestPayerUserID)
	configuredEmail := strings.TrimSpace(u.opts.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" || p.ID != configuredUserID {
		return
	}
	p.Email = configuredEmail
	p.ID = ""
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
