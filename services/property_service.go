package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"villa-backend/dto"
	"villa-backend/mapper"
	"villa-backend/repositories"
	"villa-backend/utils"
)

// PropertyService orchestrates validation, mapping and envelope
// construction around the property repository. Every operation returns
// a well-formed envelope; storage failures never escape to transport.
type PropertyService struct {
	repo repositories.PropertyRepository
	log  *logrus.Entry
}

// NewPropertyService wires the service to its repository.
func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{
		repo: repo,
		log:  utils.Logger.WithField("service", "property"),
	}
}

// storageFailure logs the unexpected error and folds it into a 500
// envelope, trading diagnostic precision for availability.
func (s *PropertyService) storageFailure(op string, err error) *dto.APIResponse {
	s.log.WithField("op", op).WithError(err).Error("storage failure")
	return dto.NewErrorResponse(http.StatusInternalServerError, err.Error())
}

// List returns every property mapped to its public shape.
func (s *PropertyService) List(ctx context.Context) *dto.APIResponse {
	properties, err := s.repo.ListAll(ctx)
	if err != nil {
		return s.storageFailure("list", err)
	}
	return dto.NewOKResponse(http.StatusOK, mapper.ToPropertyDtoList(properties))
}

// Get returns one property by id.
func (s *PropertyService) Get(ctx context.Context, id uint) *dto.APIResponse {
	if id == 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, "id must not be 0")
	}
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.storageFailure("get", err)
	}
	if property == nil {
		return dto.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("property %d not found", id))
	}
	return dto.NewOKResponse(http.StatusOK, mapper.ToPropertyDto(*property))
}

// Create validates the input, rejects duplicate names
// case-insensitively, stamps both timestamps and persists.
func (s *PropertyService) Create(ctx context.Context, input dto.PropertyCreateDto) *dto.APIResponse {
	if errs := input.Validate(); len(errs) > 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, errs...)
	}

	// Advisory pre-check; the unique index on name is the backstop
	// when two creates race past it.
	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil {
		return s.storageFailure("create", err)
	}
	if existing != nil {
		return dto.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("a property named %q already exists", input.Name))
	}

	property := mapper.FromPropertyCreateDto(input)
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	if err := s.repo.Create(ctx, &property); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return dto.NewErrorResponse(http.StatusBadRequest,
				fmt.Sprintf("a property named %q already exists", input.Name))
		}
		return s.storageFailure("create", err)
	}

	s.log.WithField("id", property.ID).Info("property created")
	return dto.NewOKResponse(http.StatusCreated, mapper.ToPropertyDto(property))
}

// Update fully replaces the property addressed by id. The body must
// carry the same identifier as the path.
func (s *PropertyService) Update(ctx context.Context, id uint, input *dto.PropertyUpdateDto) *dto.APIResponse {
	if input == nil || id == 0 || input.ID != id {
		return dto.NewErrorResponse(http.StatusBadRequest, "id mismatch between path and payload")
	}
	if errs := input.Validate(); len(errs) > 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, errs...)
	}

	property := mapper.FromPropertyUpdateDto(*input)
	property.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &property); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("property %d not found", id))
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return dto.NewErrorResponse(http.StatusBadRequest,
				fmt.Sprintf("a property named %q already exists", input.Name))
		}
		return s.storageFailure("update", err)
	}

	return dto.NewOKResponse(http.StatusOK, mapper.ToPropertyDto(property))
}

// Patch runs the partial-update pipeline: fetch a detached copy,
// project it to the editable shape, apply the sparse edits, re-validate
// and write back.
func (s *PropertyService) Patch(ctx context.Context, id uint, doc dto.PatchDocument) *dto.APIResponse {
	if len(doc) == 0 || id == 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, "patch document and non-zero id are required")
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.storageFailure("patch", err)
	}
	if property == nil {
		return dto.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("property %d not found", id))
	}

	editable := mapper.ToPropertyUpdateDto(*property)

	errs := doc.ApplyToProperty(&editable)
	errs = append(errs, editable.Validate()...)
	if len(errs) > 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, errs...)
	}

	patched := mapper.FromPropertyUpdateDto(editable)
	patched.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &patched); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return dto.NewErrorResponse(http.StatusBadRequest,
				fmt.Sprintf("a property named %q already exists", editable.Name))
		}
		return s.storageFailure("patch", err)
	}

	return dto.NewOKResponse(http.StatusOK, mapper.ToPropertyDto(patched))
}

// Delete removes the property; the store cascades to its room numbers.
func (s *PropertyService) Delete(ctx context.Context, id uint) *dto.APIResponse {
	if id == 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, "id must not be 0")
	}
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.storageFailure("delete", err)
	}
	if property == nil {
		return dto.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("property %d not found", id))
	}
	if err := s.repo.Remove(ctx, property); err != nil {
		return s.storageFailure("delete", err)
	}
	s.log.WithField("id", id).Info("property deleted")
	return dto.NewOKResponse(http.StatusNoContent, nil)
}
