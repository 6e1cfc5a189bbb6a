package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/profiled/internal/crypto"
	"github.com/joshua-takyi/profiled/internal/favicon"
	"github.com/joshua-takyi/profiled/internal/helpers"
	"github.com/joshua-takyi/profiled/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoUpdateFields is returned when a partial sub-entry update carries no
// overrides at all.
var ErrNoUpdateFields = errors.New("no fields provided for update")

// ProfileService mutates the profile's sub-collections and media fields.
// Updates are partial: only fields present in the request are touched, and a
// present-but-empty value is applied, not skipped.
type ProfileService struct {
	profiles models.ProfileRepo
	cipher   *crypto.FieldCipher
	favicons *favicon.Fetcher
	cld      *cloudinary.Cloudinary
}

func NewProfileService(profiles models.ProfileRepo, cipher *crypto.FieldCipher, favicons *favicon.Fetcher, cld *cloudinary.Cloudinary) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		cipher:   cipher,
		favicons: favicons,
		cld:      cld,
	}
}

// Partial update payloads. Pointers distinguish "absent" from "set to the
// zero value": an explicit empty string is a real override.

type SkillUpdate struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

type ProjectUpdate struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	StartDate    *MonthYearUpdate `json:"startDate"`
	EndDate      *MonthYearUpdate `json:"endDate"`
	GithubLink   *string          `json:"githubLink"`
	DeployedLink *string          `json:"deployedLink"`
}

type EducationUpdate struct {
	School       *string          `json:"school"`
	Degree       *string          `json:"degree"`
	FieldOfStudy *string          `json:"fieldOfStudy"`
	StartDate    *MonthYearUpdate `json:"startDate"`
	EndDate      *MonthYearUpdate `json:"endDate"`
	Grade        *string          `json:"grade"`
}

type CompanyUpdate struct {
	Name       *string                `json:"name"`
	Position   *string                `json:"position"`
	Employment *string                `json:"employment"`
	Location   *CompanyLocationUpdate `json:"location"`
	StartDate  *MonthYearUpdate       `json:"startDate"`
	EndDate    *MonthYearUpdate       `json:"endDate"`
}

type CompanyLocationUpdate struct {
	Address      *string `json:"address"`
	LocationType *string `json:"locationtype"`
}

type MonthYearUpdate struct {
	Month *string `json:"month"`
	Year  *int    `json:"year"`
}

type SocialLinkUpdate struct {
	Name *string `json:"name"`
	Link *string `json:"link"`
}

func putString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

func putMonthYear(set bson.M, prefix string, v *MonthYearUpdate) {
	if v == nil {
		return
	}
	putString(set, prefix+".month", v.Month)
	if v.Year != nil {
		set[prefix+".year"] = *v.Year
	}
}

// Skills

func (ps *ProfileService) AddSkill(ctx context.Context, id primitive.ObjectID, name, level string) ([]models.Skill, error) {
	entry := models.Skill{ID: primitive.NewObjectID(), Name: name, Level: level}
	updated, err := ps.profiles.PushSubEntry(ctx, id, "skills", entry)
	if err != nil {
		return nil, err
	}
	return updated.Skills, nil
}

func (ps *ProfileService) UpdateSkill(ctx context.Context, id, skillID primitive.ObjectID, upd SkillUpdate) ([]models.Skill, error) {
	set := bson.M{}
	putString(set, "name", upd.Name)
	putString(set, "level", upd.Level)
	if len(set) == 0 {
		return nil, ErrNoUpdateFields
	}

	updated, err := ps.profiles.SetSubEntryFields(ctx, id, "skills", skillID, set)
	if err != nil {
		return nil, err
	}
	return updated.Skills, nil
}

func (ps *ProfileService) RemoveSkill(ctx context.Context, id, skillID primitive.ObjectID) ([]models.Skill, error) {
	updated, err := ps.profiles.PullSubEntry(ctx, id, "skills", skillID)
	if err != nil {
		return nil, err
	}
	return updated.Skills, nil
}

// Projects

func (ps *ProfileService) AddProject(ctx context.Context, id primitive.ObjectID, project models.Project) ([]models.Project, error) {
	project.ID = primitive.NewObjectID()
	updated, err := ps.profiles.PushSubEntry(ctx, id, "projects", project)
	if err != nil {
		return nil, err
	}
	return updated.Projects, nil
}

func (ps *ProfileService) UpdateProject(ctx context.Context, id, projectID primitive.ObjectID, upd ProjectUpdate) ([]models.Project, error) {
	set := bson.M{}
	putString(set, "title", upd.Title)
	putString(set, "description", upd.Description)
	putString(set, "githubLink", upd.GithubLink)
	putString(set, "deployedLink", upd.DeployedLink)
	putMonthYear(set, "startDate", upd.StartDate)
	putMonthYear(set, "endDate", upd.EndDate)
	if len(set) == 0 {
		return nil, ErrNoUpdateFields
	}

	updated, err := ps.profiles.SetSubEntryFields(ctx, id, "projects", projectID, set)
	if err != nil {
		return nil, err
	}
	return updated.Projects, nil
}

func (ps *ProfileService) RemoveProject(ctx context.Context, id, projectID primitive.ObjectID) ([]models.Project, error) {
	updated, err := ps.profiles.PullSubEntry(ctx, id, "projects", projectID)
	if err != nil {
		return nil, err
	}
	return updated.Projects, nil
}

// Education

func (ps *ProfileService) AddEducation(ctx context.Context, id primitive.ObjectID, education models.Education) ([]models.Education, error) {
	education.ID = primitive.NewObjectID()
	updated, err := ps.profiles.PushSubEntry(ctx, id, "education", education)
	if err != nil {
		return nil, err
	}
	return updated.Education, nil
}

func (ps *ProfileService) UpdateEducation(ctx context.Context, id, educationID primitive.ObjectID, upd EducationUpdate) ([]models.Education, error) {
	set := bson.M{}
	putString(set, "school", upd.School)
	putString(set, "degree", upd.Degree)
	putString(set, "fieldOfStudy", upd.FieldOfStudy)
	putString(set, "grade", upd.Grade)
	putMonthYear(set, "startDate", upd.StartDate)
	putMonthYear(set, "endDate", upd.EndDate)
	if len(set) == 0 {
		return nil, ErrNoUpdateFields
	}

	updated, err := ps.profiles.SetSubEntryFields(ctx, id, "education", educationID, set)
	if err != nil {
		return nil, err
	}
	return updated.Education, nil
}

func (ps *ProfileService) RemoveEducation(ctx context.Context, id, educationID primitive.ObjectID) ([]models.Education, error) {
	updated, err := ps.profiles.PullSubEntry(ctx, id, "education", educationID)
	if err != nil {
		return nil, err
	}
	return updated.Education, nil
}

// Companies

func (ps *ProfileService) AddCompany(ctx context.Context, id primitive.ObjectID, company models.Company) ([]models.Company, error) {
	company.ID = primitive.NewObjectID()
	updated, err := ps.profiles.PushSubEntry(ctx, id, "companies", company)
	if err != nil {
		return nil, err
	}
	return updated.Companies, nil
}

func (ps *ProfileService) UpdateCompany(ctx context.Context, id, companyID primitive.ObjectID, upd CompanyUpdate) ([]models.Company, error) {
	set := bson.M{}
	putString(set, "name", upd.Name)
	putString(set, "position", upd.Position)
	putString(set, "employment", upd.Employment)
	if upd.Location != nil {
		putString(set, "location.address", upd.Location.Address)
		putString(set, "location.locationtype", upd.Location.LocationType)
	}
	putMonthYear(set, "startDate", upd.StartDate)
	putMonthYear(set, "endDate", upd.EndDate)
	if len(set) == 0 {
		return nil, ErrNoUpdateFields
	}

	updated, err := ps.profiles.SetSubEntryFields(ctx, id, "companies", companyID, set)
	if err != nil {
		return nil, err
	}
	return updated.Companies, nil
}

func (ps *ProfileService) RemoveCompany(ctx context.Context, id, companyID primitive.ObjectID) ([]models.Company, error) {
	updated, err := ps.profiles.PullSubEntry(ctx, id, "companies", companyID)
	if err != nil {
		return nil, err
	}
	return updated.Companies, nil
}

// Social links

// AddSocialLink encrypts the URL under a fresh per-entry IV and tries to
// discover the site's favicon first. Favicon failure is non-fatal; the link
// is saved without one.
func (ps *ProfileService) AddSocialLink(ctx context.Context, id primitive.ObjectID, name, link string) ([]models.SocialLink, error) {
	faviconURL := ps.favicons.Fetch(ctx, link)

	iv, err := crypto.GenerateIV()
	if err != nil {
		return nil, err
	}
	encrypted, err := ps.cipher.Encrypt(link, iv)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt social link: %v", err)
	}

	entry := models.SocialLink{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Link:       encrypted,
		IV:         iv,
		FaviconURL: faviconURL,
	}

	updated, err := ps.profiles.PushSubEntry(ctx, id, "socialLinks", entry)
	if err != nil {
		return nil, err
	}
	return updated.SocialLinks, nil
}

// UpdateSocialLink re-encrypts a changed URL under a new IV and refreshes the
// cached favicon for it.
func (ps *ProfileService) UpdateSocialLink(ctx context.Context, id, linkID primitive.ObjectID, upd SocialLinkUpdate) ([]models.SocialLink, error) {
	set := bson.M{}
	putString(set, "name", upd.Name)

	if upd.Link != nil {
		iv, err := crypto.GenerateIV()
		if err != nil {
			return nil, err
		}
		encrypted, err := ps.cipher.Encrypt(*upd.Link, iv)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt social link: %v", err)
		}
		set["link"] = encrypted
		set["iv"] = iv
		set["faviconUrl"] = ps.favicons.Fetch(ctx, *upd.Link)
	}

	if len(set) == 0 {
		return nil, ErrNoUpdateFields
	}

	updated, err := ps.profiles.SetSubEntryFields(ctx, id, "socialLinks", linkID, set)
	if err != nil {
		return nil, err
	}
	return updated.SocialLinks, nil
}

func (ps *ProfileService) RemoveSocialLink(ctx context.Context, id, linkID primitive.ObjectID) ([]models.SocialLink, error) {
	updated, err := ps.profiles.PullSubEntry(ctx, id, "socialLinks", linkID)
	if err != nil {
		return nil, err
	}
	return updated.SocialLinks, nil
}

// Headline and description

// SetHeadlineAndDescription encrypts the provided values with the profile's
// fixed-for-life headline/description IVs (minted once at signup) and returns
// both current values decrypted. An omitted field is left untouched.
func (ps *ProfileService) SetHeadlineAndDescription(ctx context.Context, id primitive.ObjectID, headline, description *string) (string, string, error) {
	profile, err := ps.profiles.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	outHeadline := ""
	if profile.Headline != "" {
		outHeadline, err = ps.cipher.Decrypt(profile.Headline, profile.HeadlineIv)
		if err != nil {
			return "", "", fmt.Errorf("failed to decrypt headline: %v", err)
		}
	}
	outDescription := ""
	if profile.Description != "" {
		outDescription, err = ps.cipher.Decrypt(profile.Description, profile.DescriptionIv)
		if err != nil {
			return "", "", fmt.Errorf("failed to decrypt description: %v", err)
		}
	}

	set := bson.M{}
	if headline != nil {
		enc, err := ps.cipher.Encrypt(*headline, profile.HeadlineIv)
		if err != nil {
			return "", "", fmt.Errorf("failed to encrypt headline: %v", err)
		}
		set["headline"] = enc
		outHeadline = *headline
	}
	if description != nil {
		enc, err := ps.cipher.Encrypt(*description, profile.DescriptionIv)
		if err != nil {
			return "", "", fmt.Errorf("failed to encrypt description: %v", err)
		}
		set["description"] = enc
		outDescription = *description
	}

	if len(set) == 0 {
		return "", "", ErrNoUpdateFields
	}

	if err := ps.profiles.UpdateFields(ctx, id, set); err != nil {
		return "", "", err
	}
	return outHeadline, outDescription, nil
}

// Pictures

func (ps *ProfileService) UploadProfilePicture(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader) (string, error) {
	return ps.uploadPicture(ctx, id, fileHeader, helpers.ProfilePictureFolder, "profilePicture")
}

func (ps *ProfileService) UploadBackgroundPicture(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader) (string, error) {
	return ps.uploadPicture(ctx, id, fileHeader, helpers.BackgroundPictureFolder, "profileBackgroundPicture")
}

// uploadPicture is not transactional: a failed profile update can leave an
// uploaded-but-unlinked image behind in the media store.
func (ps *ProfileService) uploadPicture(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader, folder, field string) (string, error) {
	url, err := helpers.UploadImage(ctx, ps.cld, fileHeader, folder)
	if err != nil {
		return "", err
	}

	if err := ps.profiles.UpdateFields(ctx, id, bson.M{field: url}); err != nil {
		return "", err
	}
	return url, nil
}
