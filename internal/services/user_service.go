package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/profiled/internal/crypto"
	"github.com/joshua-takyi/profiled/internal/helpers"
	"github.com/joshua-takyi/profiled/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService owns account lifecycle: signup, login, and root profile CRUD.
// Password and dateOfBirth are held as ciphertext and re-encrypted with a
// fresh IV on every write; headline/description IVs are minted here once and
// reused for the life of the profile.
type UserService struct {
	profiles  models.ProfileRepo
	cipher    *crypto.FieldCipher
	jwtSecret []byte
}

func NewUserService(profiles models.ProfileRepo, cipher *crypto.FieldCipher, jwtSecret []byte) *UserService {
	return &UserService{
		profiles:  profiles,
		cipher:    cipher,
		jwtSecret: jwtSecret,
	}
}

// Signup encrypts the credentials, persists the profile and returns a session
// token bound to the new identifier. Required-field presence is checked by
// the handler; email shape is validated here.
func (us *UserService) Signup(ctx context.Context, profile *models.Profile) (string, error) {
	if err := models.Validate.Struct(profile); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	passwordIv, err := crypto.GenerateIV()
	if err != nil {
		return "", err
	}
	dobIv, err := crypto.GenerateIV()
	if err != nil {
		return "", err
	}
	headlineIv, err := crypto.GenerateIV()
	if err != nil {
		return "", err
	}
	descriptionIv, err := crypto.GenerateIV()
	if err != nil {
		return "", err
	}

	encPassword, err := us.cipher.Encrypt(profile.Password, passwordIv)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt password: %v", err)
	}
	encDob, err := us.cipher.Encrypt(profile.DateOfBirth, dobIv)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt date of birth: %v", err)
	}

	profile.Password = encPassword
	profile.PasswordIv = passwordIv
	profile.DateOfBirth = encDob
	profile.DobIv = dobIv
	// Pre-minted and reused for every later headline/description write.
	profile.HeadlineIv = headlineIv
	profile.DescriptionIv = descriptionIv

	id, err := us.profiles.CreateProfile(ctx, profile)
	if err != nil {
		return "", err
	}

	return helpers.GenerateToken(id.Hex(), us.jwtSecret, helpers.TokenValidity)
}

// Login verifies the submitted password against the decrypted stored one and
// issues a session token. Unknown email and wrong password both come back as
// ErrWrongCredentials so callers cannot probe for account existence.
func (us *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: invalid email format", models.ErrInvalidInput)
	}

	profile, err := us.profiles.GetByEmail(ctx, email)
	if err != nil {
		if err == models.ErrProfileNotFound {
			return "", models.ErrWrongCredentials
		}
		return "", err
	}

	stored, err := us.cipher.Decrypt(profile.Password, profile.PasswordIv)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt stored password: %v", err)
	}
	if stored != password {
		return "", models.ErrWrongCredentials
	}

	return helpers.GenerateToken(profile.ID.Hex(), us.jwtSecret, helpers.TokenValidity)
}

// GetProfile returns the decrypted read view: dateOfBirth, headline and
// description in plaintext, password and every IV stripped, social links
// decrypted.
func (us *UserService) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.ProfileView, error) {
	profile, err := us.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return us.buildView(profile)
}

func (us *UserService) buildView(profile *models.Profile) (*models.ProfileView, error) {
	dob, err := us.cipher.Decrypt(profile.DateOfBirth, profile.DobIv)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt date of birth: %v", err)
	}

	view := &models.ProfileView{
		ID:                       profile.ID,
		Name:                     profile.Name,
		Email:                    profile.Email,
		DateOfBirth:              dob,
		ProfilePicture:           profile.ProfilePicture,
		ProfileBackgroundPicture: profile.ProfileBackgroundPicture,
		Location:                 profile.Location,
		Connections:              profile.Connections,
		AcademicInfo:             profile.AcademicInfo,
		Projects:                 profile.Projects,
		Skills:                   profile.Skills,
		Companies:                profile.Companies,
		Education:                profile.Education,
		SocialLinks:              []models.SocialLinkView{},
	}

	if profile.Headline != "" {
		headline, err := us.cipher.Decrypt(profile.Headline, profile.HeadlineIv)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt headline: %v", err)
		}
		view.Headline = headline
	}
	if profile.Description != "" {
		description, err := us.cipher.Decrypt(profile.Description, profile.DescriptionIv)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt description: %v", err)
		}
		view.Description = description
	}

	for _, sl := range profile.SocialLinks {
		link, err := us.cipher.Decrypt(sl.Link, sl.IV)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt social link %s: %v", sl.Name, err)
		}
		view.SocialLinks = append(view.SocialLinks, models.SocialLinkView{
			ID:         sl.ID,
			Name:       sl.Name,
			Link:       link,
			FaviconURL: sl.FaviconURL,
		})
	}

	return view, nil
}

// UpdateProfile applies a partial top-level update. A submitted password or
// dateOfBirth is re-encrypted under a freshly generated IV; everything else
// passes through as given.
func (us *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrNoUpdateFields
	}

	// The document identifier is immutable.
	delete(fields, "id")
	delete(fields, "_id")

	// password and dateOfBirth live as ciphertext; anything but a string
	// would be written into the ciphertext slot as-is.
	if raw, ok := fields["password"]; ok {
		password, isString := raw.(string)
		if !isString {
			return fmt.Errorf("%w: password must be a string", models.ErrInvalidInput)
		}
		if password != "" {
			iv, err := crypto.GenerateIV()
			if err != nil {
				return err
			}
			enc, err := us.cipher.Encrypt(password, iv)
			if err != nil {
				return fmt.Errorf("failed to encrypt password: %v", err)
			}
			fields["password"] = enc
			fields["passwordIv"] = iv
		}
	}

	if raw, ok := fields["dateOfBirth"]; ok {
		dob, isString := raw.(string)
		if !isString {
			return fmt.Errorf("%w: dateOfBirth must be a string", models.ErrInvalidInput)
		}
		if dob != "" {
			iv, err := crypto.GenerateIV()
			if err != nil {
				return err
			}
			enc, err := us.cipher.Encrypt(dob, iv)
			if err != nil {
				return fmt.Errorf("failed to encrypt date of birth: %v", err)
			}
			fields["dateOfBirth"] = enc
			fields["dobIv"] = iv
		}
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	return us.profiles.UpdateFields(ctx, id, set)
}

// DeleteProfile removes the account and returns the removed document with
// password and dateOfBirth decrypted, matching the established API contract.
// Exposing the plaintext password here is a known leak; see DESIGN.md.
func (us *UserService) DeleteProfile(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	removed, err := us.profiles.DeleteProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	password, err := us.cipher.Decrypt(removed.Password, removed.PasswordIv)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt password: %v", err)
	}
	dob, err := us.cipher.Decrypt(removed.DateOfBirth, removed.DobIv)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt date of birth: %v", err)
	}

	removed.Password = password
	removed.DateOfBirth = dob
	return removed, nil
}
