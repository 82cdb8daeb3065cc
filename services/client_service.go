package services

import (
	"strings"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/utils"
)

type ClientService struct {
	clients  *repositories.ClientRepository
	builties *repositories.BuiltyRepository
}

func NewClientService(clients *repositories.ClientRepository, builties *repositories.BuiltyRepository) *ClientService {
	return &ClientService{clients: clients, builties: builties}
}

type ClientInput struct {
	ClientName   string  `json:"client_name" validate:"required,min=3"`
	GSTNumber    string  `json:"gst_number" validate:"required,len=15"`
	ContactName  string  `json:"contact_name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	CreditLimit  float64 `json:"credit_limit" validate:"gte=0"`
	CreditPeriod int     `json:"credit_period_days" validate:"gte=0"`
}

func (s *ClientService) Create(input *ClientInput, userID int) (*models.Client, error) {
	if err := s.validateInput(input, 0); err != nil {
		return nil, err
	}

	maxID, err := s.clients.MaxID()
	if err != nil {
		return nil, err
	}

	client := models.Client{
		ClientCode:   utils.SequentialCode("CLT", maxID),
		ClientName:   input.ClientName,
		GSTNumber:    strings.ToUpper(strings.TrimSpace(input.GSTNumber)),
		ContactName:  input.ContactName,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		CreditLimit:  input.CreditLimit,
		CreditPeriod: input.CreditPeriod,
		Status:       models.ClientActive,
		CreatedBy:    userID,
	}

	if err := s.clients.Create(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(id uint, input *ClientInput, userID int) (*models.Client, error) {
	client, err := s.clients.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input, id); err != nil {
		return nil, err
	}

	client.ClientName = input.ClientName
	client.GSTNumber = strings.ToUpper(strings.TrimSpace(input.GSTNumber))
	client.ContactName = input.ContactName
	client.Phone = input.Phone
	client.Email = input.Email
	client.Address = input.Address
	client.City = input.City
	client.State = input.State
	client.CreditLimit = input.CreditLimit
	client.CreditPeriod = input.CreditPeriod
	client.UpdatedBy = userID

	if err := s.clients.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	return s.clients.GetByID(id)
}

func (s *ClientService) GetAll(search, status string, p *models.Pagination) ([]models.Client, error) {
	return s.clients.GetAll(search, status, p)
}

func (s *ClientService) Delete(id uint, userID int) error {
	client, err := s.clients.GetByID(id)
	if err != nil {
		return err
	}

	outstanding, err := s.builties.OutstandingByClient(id)
	if err != nil {
		return err
	}
	if outstanding > 0 {
		return NewValidationError("client %s still owes %.2f, settle before deleting", client.ClientCode, outstanding)
	}

	client.DeletedBy = userID
	if err := s.clients.Update(client); err != nil {
		return err
	}
	return s.clients.Delete(id)
}

// SetStatus flips a client between ACTIVE and INACTIVE.
func (s *ClientService) SetStatus(id uint, status string, userID int) (*models.Client, error) {
	if status != models.ClientActive && status != models.ClientInactive {
		return nil, NewValidationError("invalid client status %s", status)
	}

	client, err := s.clients.GetByID(id)
	if err != nil {
		return nil, err
	}

	client.Status = status
	client.UpdatedBy = userID
	if err := s.clients.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Outstanding is the unpaid balance the client is carrying.
func (s *ClientService) Outstanding(id uint) (float64, error) {
	if _, err := s.clients.GetByID(id); err != nil {
		return 0, err
	}
	return s.builties.OutstandingByClient(id)
}

// CheckCredit rejects a new billing when it would push the client past its
// credit limit. A zero limit means unlimited credit.
func (s *ClientService) CheckCredit(client *models.Client, newAmount float64) error {
	if client.CreditLimit <= 0 {
		return nil
	}

	outstanding, err := s.builties.OutstandingByClient(client.ID)
	if err != nil {
		return err
	}

	if outstanding+newAmount > client.CreditLimit {
		return NewValidationError("credit limit exceeded for %s: outstanding %.2f + new %.2f > limit %.2f",
			client.ClientCode, outstanding, newAmount, client.CreditLimit)
	}
	return nil
}

func (s *ClientService) validateInput(input *ClientInput, excludeID uint) error {
	if err := validate.Struct(input); err != nil {
		return NewValidationError("invalid client data: %v", err)
	}

	gstin := strings.ToUpper(strings.TrimSpace(input.GSTNumber))
	if !utils.IsValidGSTIN(gstin) {
		return NewValidationError("invalid GST number %s", input.GSTNumber)
	}

	count, err := s.clients.CountByGSTIN(gstin, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("GST number %s already registered", gstin)
	}
	return nil
}
