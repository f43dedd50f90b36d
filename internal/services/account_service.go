package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"butik/internal/apperrors"
	"butik/internal/models"
	"butik/internal/repositories"
)

// AccountService handles self-service operations on the authenticated
// identity: profile reads and updates, password changes, addresses. The
// caller's identity is always an explicit parameter.
type AccountService struct {
	userRepo    repositories.UserRepository
	cartRepo    repositories.CartRepository
	addressRepo repositories.AddressRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository, cartRepo repositories.CartRepository, addressRepo repositories.AddressRepository) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
	}
}

// Me returns the caller's identity together with their current cart.
func (s *AccountService) Me(userID string) (*models.User, []models.CartEntry, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, cart, nil
}

// UpdateSelf applies a partial update: only supplied fields change.
func (s *AccountService) UpdateSelf(userID string, name *string, phone *int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		user.Name = *name
	}
	if phone != nil {
		if *phone < 1000000000 || *phone > 9999999999 {
			return nil, fmt.Errorf("phone must be a 10-digit number: %w", apperrors.ErrInvalidArgument)
		}
		user.Phone = *phone
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the old password and stores a hash of the new one.
func (s *AccountService) UpdatePassword(userID, oldPassword, newPassword string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return nil, fmt.Errorf("old password not correct: %w", apperrors.ErrInvalidCredentials)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAddress creates an address owned by the caller.
func (s *AccountService) CreateAddress(userID string, address *models.Address) error {
	address.UserID = userID
	return s.addressRepo.Create(address)
}

// Addresses returns the caller's addresses.
func (s *AccountService) Addresses(userID string) ([]models.Address, error) {
	return s.addressRepo.GetByUser(userID)
}

// DeleteAddress removes an address. Callers can only delete their own;
// anyone else gets apperrors.ErrForbidden and the address stays.
func (s *AccountService) DeleteAddress(userID, addressID string) error {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return fmt.Errorf("address %s is not owned by the caller: %w", addressID, apperrors.ErrForbidden)
	}
	return s.addressRepo.Delete(addressID)
}
