package storefront

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/validate"
)

// UsersService wraps the profile endpoints. All operations hard-fail.
type UsersService struct {
	api *httpapi.Client
}

// Me returns the authenticated user's normalized context, including the
// derived dashboard type.
func (s *UsersService) Me(ctx context.Context) (domain.UserContext, error) {
	body, err := s.api.GetJSON(ctx, pathUsers+"/me", nil)
	if err != nil {
		return domain.UserContext{}, fmt.Errorf("get profile: %w", err)
	}
	return domain.NormalizeUserContext(decode.UnwrapItem(body, "data", "user")), nil
}

// UpdateProfileInput holds a partial profile update.
type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateProfile submits a partial profile edit and returns the refreshed
// context.
func (s *UsersService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (domain.UserContext, error) {
	if err := validate.Struct(in); err != nil {
		return domain.UserContext{}, fmt.Errorf("update profile: %w", err)
	}
	body, err := s.api.PatchJSON(ctx, pathUsers+"/me", in)
	if err != nil {
		return domain.UserContext{}, fmt.Errorf("update profile: %w", err)
	}
	return domain.NormalizeUserContext(decode.UnwrapItem(body, "data", "user")), nil
}

// UploadsService wraps image uploads for admin flows. Hard-fail.
type UploadsService struct {
	api *httpapi.Client
}

// UploadImage uploads an image and returns its public URL.
func (s *UploadsService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, err := s.api.PostMultipart(ctx, pathUploads, "image", filepath.Base(filename), r)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	rec := decode.UnwrapItem(body, "data", "file")
	u, ok := decode.FirstString(rec, "url", "image_url", "path")
	if !ok {
		return "", fmt.Errorf("upload image: response carried no url")
	}
	return u, nil
}
