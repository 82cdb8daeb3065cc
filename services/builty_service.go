package services

import (
	"time"

	"transport-app/config"
	"transport-app/controllers/idgen"
	"transport-app/models"
	"transport-app/repositories"
	"transport-app/types"
	"transport-app/utils"
)

type BuiltyService struct {
	builties *repositories.BuiltyRepository
	trips    *repositories.TripRepository
	clients  *ClientService
}

func NewBuiltyService(builties *repositories.BuiltyRepository, trips *repositories.TripRepository, clients *ClientService) *BuiltyService {
	return &BuiltyService{builties: builties, trips: trips, clients: clients}
}

type BuiltyInput struct {
	TripID           uint    `json:"trip_id" validate:"required"`
	ConsignorName    string  `json:"consignor_name" validate:"required"`
	ConsignorAddress string  `json:"consignor_address"`
	ConsigneeName    string  `json:"consignee_name" validate:"required"`
	ConsigneeAddress string  `json:"consignee_address"`
	GoodsDescription string  `json:"goods_description" validate:"required"`
	Packages         int     `json:"packages" validate:"gt=0"`
	ActualWeight     float64 `json:"actual_weight" validate:"gt=0"`
	ChargedWeight    float64 `json:"charged_weight" validate:"gt=0"`
	RatePerTon       float64 `json:"rate_per_ton" validate:"gt=0"`
	Hamali           float64 `json:"hamali" validate:"gte=0"`
	DDCharges        float64 `json:"dd_charges" validate:"gte=0"`
	OtherCharges     float64 `json:"other_charges" validate:"gte=0"`
	GSTRate          float64 `json:"gst_rate" validate:"gte=0,lte=28"`
	BuiltyDate       string  `json:"builty_date"`
}

// Create raises a builty against a trip. Freight is charged weight times
// rate, GST is split by state, the due date runs off the client's credit
// period, and the whole document is refused when it would breach the
// client's credit limit.
func (s *BuiltyService) Create(input *BuiltyInput, userID int) (*models.Builty, error) {
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid builty data: %v", err)
	}

	trip, err := s.trips.GetByID(input.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status == models.TripCancelled {
		return nil, NewValidationError("trip %s is cancelled", trip.TripNumber)
	}

	client, err := s.clients.GetByID(trip.ClientID)
	if err != nil {
		return nil, err
	}

	builtyDate := time.Now()
	if input.BuiltyDate != "" {
		if builtyDate, err = utils.ParseDate(input.BuiltyDate); err != nil {
			return nil, NewValidationError("builty_date: %v", err)
		}
	}

	gstRate := input.GSTRate
	if gstRate == 0 {
		gstRate = config.DefaultGSTRate
	}

	freight := utils.RoundMoney(input.ChargedWeight * input.RatePerTon)
	taxable := freight + input.Hamali + input.DDCharges + input.OtherCharges
	breakup := ComputeGST(taxable, gstRate, client.GSTNumber, config.CompanyGSTIN)

	if err := s.clients.CheckCredit(client, breakup.GrandTotal); err != nil {
		return nil, err
	}

	builty := models.Builty{
		BuiltyNo:         types.SnowflakeID(idgen.GenerateID()),
		TripID:           trip.ID,
		ClientID:         client.ID,
		ConsignorName:    input.ConsignorName,
		ConsignorAddress: input.ConsignorAddress,
		ConsigneeName:    input.ConsigneeName,
		ConsigneeAddress: input.ConsigneeAddress,
		FromLocation:     trip.Origin,
		ToLocation:       trip.Destination,
		GoodsDescription: input.GoodsDescription,
		Packages:         input.Packages,
		ActualWeight:     input.ActualWeight,
		ChargedWeight:    input.ChargedWeight,
		RatePerTon:       input.RatePerTon,
		FreightCharges:   freight,
		Hamali:           utils.RoundMoney(input.Hamali),
		DDCharges:        utils.RoundMoney(input.DDCharges),
		OtherCharges:     utils.RoundMoney(input.OtherCharges),
		GSTRate:          gstRate,
		CGSTAmount:       breakup.CGST,
		SGSTAmount:       breakup.SGST,
		IGSTAmount:       breakup.IGST,
		GrandTotal:       breakup.GrandTotal,
		BuiltyDate:       builtyDate,
		DueDate:          DueDate(builtyDate, client.CreditPeriod, config.DefaultCreditPeriod),
		PaymentStatus:    models.PaymentPending,
		DeliveryStatus:   models.DeliveryPending,
		CreatedBy:        userID,
	}

	if err := s.builties.Create(&builty); err != nil {
		return nil, err
	}
	return &builty, nil
}

// Update reworks the charges on a builty nothing has been paid against yet.
func (s *BuiltyService) Update(id uint, input *BuiltyInput, userID int) (*models.Builty, error) {
	builty, err := s.builties.GetByID(id)
	if err != nil {
		return nil, err
	}
	if builty.PaymentStatus != models.PaymentPending {
		return nil, NewValidationError("builty %s has payments recorded, amend with a credit note", builty.BuiltyNo)
	}
	if err := validate.Struct(input); err != nil {
		return nil, NewValidationError("invalid builty data: %v", err)
	}

	client, err := s.clients.GetByID(builty.ClientID)
	if err != nil {
		return nil, err
	}

	gstRate := input.GSTRate
	if gstRate == 0 {
		gstRate = config.DefaultGSTRate
	}

	freight := utils.RoundMoney(input.ChargedWeight * input.RatePerTon)
	taxable := freight + input.Hamali + input.DDCharges + input.OtherCharges
	breakup := ComputeGST(taxable, gstRate, client.GSTNumber, config.CompanyGSTIN)

	builty.ConsignorName = input.ConsignorName
	builty.ConsignorAddress = input.ConsignorAddress
	builty.ConsigneeName = input.ConsigneeName
	builty.ConsigneeAddress = input.ConsigneeAddress
	builty.GoodsDescription = input.GoodsDescription
	builty.Packages = input.Packages
	builty.ActualWeight = input.ActualWeight
	builty.ChargedWeight = input.ChargedWeight
	builty.RatePerTon = input.RatePerTon
	builty.FreightCharges = freight
	builty.Hamali = utils.RoundMoney(input.Hamali)
	builty.DDCharges = utils.RoundMoney(input.DDCharges)
	builty.OtherCharges = utils.RoundMoney(input.OtherCharges)
	builty.GSTRate = gstRate
	builty.CGSTAmount = breakup.CGST
	builty.SGSTAmount = breakup.SGST
	builty.IGSTAmount = breakup.IGST
	builty.GrandTotal = breakup.GrandTotal
	builty.UpdatedBy = userID

	if err := s.builties.Update(builty); err != nil {
		return nil, err
	}
	return builty, nil
}

func (s *BuiltyService) GetByID(id uint) (*models.Builty, error) {
	return s.builties.GetByID(id)
}

func (s *BuiltyService) GetAll(f repositories.BuiltyFilter, p *models.Pagination) ([]models.Builty, error) {
	return s.builties.GetAll(f, p)
}

// RecordPayment books a receipt against the builty. Paying the full balance
// settles it; anything less leaves it PARTIAL.
func (s *BuiltyService) RecordPayment(id uint, amount float64, userID int) (*models.Builty, error) {
	if amount <= 0 {
		return nil, NewValidationError("payment amount must be positive")
	}

	builty, err := s.builties.GetByID(id)
	if err != nil {
		return nil, err
	}
	if builty.PaymentStatus == models.PaymentPaid {
		return nil, NewValidationError("builty %s is already settled", builty.BuiltyNo)
	}

	balance := utils.RoundMoney(builty.Balance())
	amount = utils.RoundMoney(amount)
	if amount > balance {
		return nil, NewValidationError("payment %.2f exceeds balance %.2f", amount, balance)
	}

	builty.PaidAmount = utils.RoundMoney(builty.PaidAmount + amount)
	if builty.PaidAmount >= builty.GrandTotal {
		builty.PaymentStatus = models.PaymentPaid
	} else {
		builty.PaymentStatus = models.PaymentPartial
	}
	builty.UpdatedBy = userID

	if err := s.builties.Update(builty); err != nil {
		return nil, err
	}
	return builty, nil
}

func (s *BuiltyService) SetDeliveryStatus(id uint, status string, userID int) (*models.Builty, error) {
	builty, err := s.builties.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionDelivery(builty.DeliveryStatus, status) {
		return nil, NewValidationError("builty %s cannot move %s -> %s", builty.BuiltyNo, builty.DeliveryStatus, status)
	}

	builty.DeliveryStatus = status
	builty.UpdatedBy = userID
	if err := s.builties.Update(builty); err != nil {
		return nil, err
	}
	return builty, nil
}

// Delete voids a builty nothing has been collected against. Anything with a
// receipt on it stays on the books.
func (s *BuiltyService) Delete(id uint, userID int) error {
	builty, err := s.builties.GetByID(id)
	if err != nil {
		return err
	}
	if builty.PaymentStatus != models.PaymentPending || builty.PaidAmount > 0 {
		return NewValidationError("builty %s has payments recorded and cannot be deleted", builty.BuiltyNo)
	}

	builty.DeletedBy = userID
	if err := s.builties.Update(builty); err != nil {
		return err
	}
	return s.builties.Delete(id)
}

// MarkOverdueSweep flags unpaid builties past their due date. It returns how
// many were flipped; the reminder mailer runs it before every pass.
func (s *BuiltyService) MarkOverdueSweep(asOf time.Time) (int, error) {
	candidates, err := s.builties.OverdueCandidates(asOf)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for i := range candidates {
		candidates[i].PaymentStatus = models.PaymentOverdue
		if err := s.builties.Update(&candidates[i]); err != nil {
			return flipped, err
		}
		flipped++
	}
	return flipped, nil
}

// AttachPdf records where the externally generated builty PDF landed.
func (s *BuiltyService) AttachPdf(id uint, path string, userID int) (*models.Builty, error) {
	if path == "" {
		return nil, NewValidationError("pdf path is required")
	}

	builty, err := s.builties.GetByID(id)
	if err != nil {
		return nil, err
	}

	builty.PdfPath = path
	builty.UpdatedBy = userID
	if err := s.builties.Update(builty); err != nil {
		return nil, err
	}
	return builty, nil
}
