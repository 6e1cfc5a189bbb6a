package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthYear is how the profile stores coarse dates on projects, education
// and employment history.
type MonthYear struct {
	Month string `bson:"month,omitempty" json:"month,omitempty"`
	Year  int    `bson:"year,omitempty" json:"year,omitempty"`
}

type Location struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type AcademicInfo struct {
	Branch   string `bson:"branch,omitempty" json:"branch,omitempty"`
	Roll     string `bson:"roll,omitempty" json:"roll,omitempty"`
	Semester string `bson:"semester,omitempty" json:"semester,omitempty"`
}

type Skill struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name,omitempty" json:"name"`
	Level string             `bson:"level,omitempty" json:"level"`
}

type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	StartDate    MonthYear          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      MonthYear          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	GithubLink   string             `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	DeployedLink string             `bson:"deployedLink,omitempty" json:"deployedLink,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	School       string             `bson:"school,omitempty" json:"school,omitempty"`
	Degree       string             `bson:"degree,omitempty" json:"degree,omitempty"`
	FieldOfStudy string             `bson:"fieldOfStudy,omitempty" json:"fieldOfStudy,omitempty"`
	StartDate    MonthYear          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      MonthYear          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Grade        string             `bson:"grade,omitempty" json:"grade,omitempty"`
}

type CompanyLocation struct {
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	LocationType string `bson:"locationtype,omitempty" json:"locationtype,omitempty"`
}

type Company struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Position   string             `bson:"position,omitempty" json:"position,omitempty"`
	Location   CompanyLocation    `bson:"location,omitempty" json:"location,omitempty"`
	Employment string             `bson:"employment,omitempty" json:"employment,omitempty"`
	StartDate  MonthYear          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate    MonthYear          `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// SocialLink stores the link ciphertext together with its one-per-entry IV.
// The IV is regenerated on every create and on every link-value update.
type SocialLink struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name,omitempty" json:"name"`
	Link       string             `bson:"link,omitempty" json:"link"`
	IV         string             `bson:"iv,omitempty" json:"iv,omitempty"`
	FaviconURL string             `bson:"faviconUrl,omitempty" json:"faviconUrl,omitempty"`
}

// Profile is the per-account aggregate document. password, dateOfBirth,
// headline, description and socialLinks[].link are ciphertext; each has a
// companion IV field. headlineIv and descriptionIv are minted once at signup
// and never change, while passwordIv and dobIv are replaced on every
// re-encryption.
type Profile struct {
	ID                       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name                     string               `bson:"name" json:"name"`
	Email                    string               `bson:"email" json:"email" validate:"omitempty,email"`
	Password                 string               `bson:"password" json:"password,omitempty"`
	DateOfBirth              string               `bson:"dateOfBirth" json:"dateOfBirth,omitempty"`
	Headline                 string               `bson:"headline,omitempty" json:"headline,omitempty"`
	Description              string               `bson:"description,omitempty" json:"description,omitempty"`
	ProfilePicture           string               `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	ProfileBackgroundPicture string               `bson:"profileBackgroundPicture,omitempty" json:"profileBackgroundPicture,omitempty"`
	Location                 Location             `bson:"location,omitempty" json:"location,omitempty"`
	Connections              []primitive.ObjectID `bson:"connections,omitempty" json:"connections,omitempty"`
	AcademicInfo             AcademicInfo         `bson:"academicInfo,omitempty" json:"academicInfo,omitempty"`
	Projects                 []Project            `bson:"projects,omitempty" json:"projects,omitempty"`
	Skills                   []Skill              `bson:"skills,omitempty" json:"skills,omitempty"`
	Companies                []Company            `bson:"companies,omitempty" json:"companies,omitempty"`
	Education                []Education          `bson:"education,omitempty" json:"education,omitempty"`
	SocialLinks              []SocialLink         `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	PasswordIv               string               `bson:"passwordIv,omitempty" json:"passwordIv,omitempty"`
	DobIv                    string               `bson:"dobIv,omitempty" json:"dobIv,omitempty"`
	HeadlineIv               string               `bson:"headlineIv,omitempty" json:"headlineIv,omitempty"`
	DescriptionIv            string               `bson:"descriptionIv,omitempty" json:"descriptionIv,omitempty"`
}

// SocialLinkView is the decrypted read-side shape of a social link. IVs are
// storage metadata and never leave the store on reads.
type SocialLinkView struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Link       string             `json:"link"`
	FaviconURL string             `json:"faviconUrl,omitempty"`
}

// ProfileView is what GET /users/:id returns: dateOfBirth, headline and
// description decrypted, password and every IV stripped, social links
// replaced with their decrypted view.
type ProfileView struct {
	ID                       primitive.ObjectID   `json:"id"`
	Name                     string               `json:"name"`
	Email                    string               `json:"email"`
	DateOfBirth              string               `json:"dateOfBirth"`
	Headline                 string               `json:"headline,omitempty"`
	Description              string               `json:"description,omitempty"`
	ProfilePicture           string               `json:"profilePicture,omitempty"`
	ProfileBackgroundPicture string               `json:"profileBackgroundPicture,omitempty"`
	Location                 Location             `json:"location,omitempty"`
	Connections              []primitive.ObjectID `json:"connections,omitempty"`
	AcademicInfo             AcademicInfo         `json:"academicInfo,omitempty"`
	Projects                 []Project            `json:"projects,omitempty"`
	Skills                   []Skill              `json:"skills,omitempty"`
	Companies                []Company            `json:"companies,omitempty"`
	Education                []Education          `json:"education,omitempty"`
	SocialLinks              []SocialLinkView     `json:"socialLinks"`
}

// MissingSignupFields lists every absent required signup field, in the order
// the API documents them.
func (p *Profile) MissingSignupFields() []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.DateOfBirth == "" {
		missing = append(missing, "dateOfBirth")
	}
	if p.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
