package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso CRUD para formas de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create crea una forma de pago.
func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	method := &entity.PaymentMethod{
		ID:                   uuid.New().String(),
		Name:                 in.Name,
		RequiresInstallments: in.RequiresInstallments,
		CreatedAt:            time.Now(),
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// GetByID obtiene una forma de pago por ID.
func (uc *PaymentMethodUseCase) GetByID(id string) (*dto.PaymentMethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	return toPaymentMethodResponse(method), nil
}

// List lista todas las formas de pago (el catálogo es pequeño, sin paginación).
func (uc *PaymentMethodUseCase) List() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toPaymentMethodResponse(m))
	}
	return items, nil
}

// Update actualiza una forma de pago.
func (uc *PaymentMethodUseCase) Update(id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		method.Name = *in.Name
	}
	if in.RequiresInstallments != nil {
		method.RequiresInstallments = *in.RequiresInstallments
	}
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// Delete elimina una forma de pago por ID.
func (uc *PaymentMethodUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	if m == nil {
		return nil
	}
	return &dto.PaymentMethodResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		RequiresInstallments: m.RequiresInstallments,
		CreatedAt:            m.CreatedAt,
	}
}
