package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
	"github.com/meinblog/blog-api/internal/ports"
)

// maxProfilePictureBytes bounds the decoded size of an uploaded picture.
const maxProfilePictureBytes = 10 * 1024 * 1024

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Users ports.UserStore
}

// ProfileService reads and mutates the authenticated user's profile.
type ProfileService struct {
	users ports.UserStore
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	return &ProfileService{users: opts.Users}
}

// Get returns the profile for the given account.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.PublicUser, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	user, findErr := s.users.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	public := user.Public()
	return &public, nil
}

// UpdateInput groups the mutable profile fields. Nil pointers leave the
// corresponding column untouched.
type UpdateInput struct {
	Name           *string
	ProfilePicture *string
	Age            *int
	Hobbies        *[]string
	Address        *model.Address
}

// Update applies the given field changes and returns the updated profile.
func (s *ProfileService) Update(ctx context.Context, userID string, input UpdateInput) (*model.PublicUser, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	fields := model.UpdateUserFields{
		ProfilePicture: input.ProfilePicture,
		Age:            input.Age,
		Hobbies:        input.Hobbies,
		Address:        input.Address,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errs.ValidationField("name", "name must not be empty")
		}
		fields.Name = &name
	}
	if input.ProfilePicture != nil {
		if validateErr := validateProfilePicture(*input.ProfilePicture); validateErr != nil {
			return nil, validateErr
		}
	}
	if input.Age != nil && (*input.Age < 0 || *input.Age > 150) {
		return nil, errs.ValidationField("age", "age is out of range")
	}

	user, updateErr := s.users.Update(ctx, id, fields)
	if updateErr != nil {
		return nil, updateErr
	}
	public := user.Public()
	return &public, nil
}

// RemovePicture clears the stored profile picture.
func (s *ProfileService) RemovePicture(ctx context.Context, userID string) (*model.PublicUser, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	user, updateErr := s.users.Update(ctx, id, model.UpdateUserFields{RemovePicture: true})
	if updateErr != nil {
		return nil, updateErr
	}
	public := user.Public()
	return &public, nil
}

// validateProfilePicture accepts a data URI or bare base64 payload and
// rejects pictures whose decoded size exceeds the limit.
func validateProfilePicture(picture string) error {
	if picture == "" {
		return errs.ValidationField("profilePicture", "profile picture must not be empty")
	}

	payload := picture
	if strings.HasPrefix(picture, "data:") {
		idx := strings.Index(picture, ",")
		if idx < 0 {
			return errs.ValidationField("profilePicture", "profile picture data URI is malformed")
		}
		payload = picture[idx+1:]
	}

	// Estimate decoded size without materializing the image.
	decoded := base64.StdEncoding.DecodedLen(len(payload))
	if decoded > maxProfilePictureBytes {
		return errs.ValidationField("profilePicture", "profile picture exceeds the 10MB limit")
	}
	return nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.ValidationField("userId", "user id is invalid")
	}
	return id, nil
}
