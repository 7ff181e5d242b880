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

// RoomNumberService mirrors PropertyService for the child resource and
// additionally validates the property reference against the property
// repository on every mutating call.
type RoomNumberService struct {
	repo         repositories.RoomNumberRepository
	propertyRepo repositories.PropertyRepository
	log          *logrus.Entry
}

// NewRoomNumberService wires the service to both repositories.
func NewRoomNumberService(repo repositories.RoomNumberRepository, propertyRepo repositories.PropertyRepository) *RoomNumberService {
	return &RoomNumberService{
		repo:         repo,
		propertyRepo: propertyRepo,
		log:          utils.Logger.WithField("service", "roomnumber"),
	}
}

func (s *RoomNumberService) storageFailure(op string, err error) *dto.APIResponse {
	s.log.WithField("op", op).WithError(err).Error("storage failure")
	return dto.NewErrorResponse(http.StatusInternalServerError, err.Error())
}

// propertyExists runs the cross-entity foreign-key check.
func (s *RoomNumberService) propertyExists(ctx context.Context, propertyID uint) (bool, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return property != nil, nil
}

// List returns every room number mapped to its public shape.
func (s *RoomNumberService) List(ctx context.Context) *dto.APIResponse {
	roomNumbers, err := s.repo.ListAll(ctx)
	if err != nil {
		return s.storageFailure("list", err)
	}
	return dto.NewOKResponse(http.StatusOK, mapper.ToRoomNumberDtoList(roomNumbers))
}

// Get returns one room number by its caller-supplied key.
func (s *RoomNumberService) Get(ctx context.Context, roomNo uint) *dto.APIResponse {
	if roomNo == 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, "roomNo must not be 0")
	}
	roomNumber, err := s.repo.FindByRoomNo(ctx, roomNo)
	if err != nil {
		return s.storageFailure("get", err)
	}
	if roomNumber == nil {
		return dto.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("room number %d not found", roomNo))
	}
	return dto.NewOKResponse(http.StatusOK, mapper.ToRoomNumberDto(*roomNumber))
}

// Create validates the input, rejects an already-taken roomNo and a
// dangling property reference, stamps both timestamps and persists.
func (s *RoomNumberService) Create(ctx context.Context, input dto.RoomNumberCreateDto) *dto.APIResponse {
	if errs := input.Validate(); len(errs) > 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, errs...)
	}

	existing, err := s.repo.FindByRoomNo(ctx, input.RoomNo)
	if err != nil {
		return s.storageFailure("create", err)
	}
	if existing != nil {
		return dto.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("room number %d already exists", input.RoomNo))
	}

	ok, err := s.propertyExists(ctx, input.PropertyID)
	if err != nil {
		return s.storageFailure("create", err)
	}
	if !ok {
		return dto.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("property %d does not exist", input.PropertyID))
	}

	roomNumber := mapper.FromRoomNumberCreateDto(input)
	now := time.Now()
	roomNumber.CreatedAt = now
	roomNumber.UpdatedAt = now

	if err := s.repo.Create(ctx, &roomNumber); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return dto.NewErrorResponse(http.StatusBadRequest,
				fmt.Sprintf("room number %d already exists", input.RoomNo))
		}
		return s.storageFailure("create", err)
	}

	s.log.WithField("roomNo", roomNumber.RoomNo).Info("room number created")
	return dto.NewOKResponse(http.StatusCreated, mapper.ToRoomNumberDto(roomNumber))
}

// Update fully replaces the room number addressed by roomNo. The key is
// immutable, so a payload disagreeing with the path is rejected.
func (s *RoomNumberService) Update(ctx context.Context, roomNo uint, input *dto.RoomNumberUpdateDto) *dto.APIResponse {
	if input == nil || roomNo == 0 || input.RoomNo != roomNo {
		return dto.NewErrorResponse(http.StatusBadRequest, "roomNo mismatch between path and payload")
	}
	if errs := input.Validate(); len(errs) > 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, errs...)
	}

	ok, err := s.propertyExists(ctx, input.PropertyID)
	if err != nil {
		return s.storageFailure("update", err)
	}
	if !ok {
		return dto.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("property %d does not exist", input.PropertyID))
	}

	roomNumber := mapper.FromRoomNumberUpdateDto(*input)
	roomNumber.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &roomNumber); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("room number %d not found", roomNo))
		}
		return s.storageFailure("update", err)
	}

	return dto.NewOKResponse(http.StatusOK, mapper.ToRoomNumberDto(roomNumber))
}

// Patch mirrors the property patch pipeline, re-running the
// foreign-key check after the edits are applied.
func (s *RoomNumberService) Patch(ctx context.Context, roomNo uint, doc dto.PatchDocument) *dto.APIResponse {
	if len(doc) == 0 || roomNo == 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, "patch document and non-zero roomNo are required")
	}

	roomNumber, err := s.repo.FindByRoomNo(ctx, roomNo)
	if err != nil {
		return s.storageFailure("patch", err)
	}
	if roomNumber == nil {
		return dto.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("room number %d not found", roomNo))
	}

	editable := mapper.ToRoomNumberUpdateDto(*roomNumber)

	errs := doc.ApplyToRoomNumber(&editable)
	errs = append(errs, editable.Validate()...)
	if len(errs) > 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, errs...)
	}

	ok, err := s.propertyExists(ctx, editable.PropertyID)
	if err != nil {
		return s.storageFailure("patch", err)
	}
	if !ok {
		return dto.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("property %d does not exist", editable.PropertyID))
	}

	patched := mapper.FromRoomNumberUpdateDto(editable)
	patched.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &patched); err != nil {
		return s.storageFailure("patch", err)
	}

	return dto.NewOKResponse(http.StatusOK, mapper.ToRoomNumberDto(patched))
}

// Delete removes the room number.
func (s *RoomNumberService) Delete(ctx context.Context, roomNo uint) *dto.APIResponse {
	if roomNo == 0 {
		return dto.NewErrorResponse(http.StatusBadRequest, "roomNo must not be 0")
	}
	roomNumber, err := s.repo.FindByRoomNo(ctx, roomNo)
	if err != nil {
		return s.storageFailure("delete", err)
	}
	if roomNumber == nil {
		return dto.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("room number %d not found", roomNo))
	}
	if err := s.repo.Remove(ctx, roomNumber); err != nil {
		return s.storageFailure("delete", err)
	}
	s.log.WithField("roomNo", roomNo).Info("room number deleted")
	return dto.NewOKResponse(http.StatusNoContent, nil)
}
