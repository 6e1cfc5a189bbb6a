package services

import (
	"context"
	"sync"

	"github.com/joshua-takyi/profiled/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeProfileRepo is an in-memory stand-in for the Mongo-backed repo. It
// records the update documents handed to it so tests can assert exactly which
// fields a partial update touches.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[primitive.ObjectID]*models.Profile

	lastSubField string
	lastSet      bson.M
}

func newFakeRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]*models.Profile{}}
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, profile *models.Profile) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.profiles {
		if p.Email == profile.Email {
			return primitive.NilObjectID, models.ErrDuplicateEmail
		}
	}
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	cp := *profile
	f.profiles[profile.ID] = &cp
	return profile.ID, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrProfileNotFound
}

func (f *fakeProfileRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.profiles[id]
	if !ok {
		return models.ErrProfileNotFound
	}
	f.lastSet = fields

	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "password":
			p.Password = s
		case "passwordIv":
			p.PasswordIv = s
		case "dateOfBirth":
			p.DateOfBirth = s
		case "dobIv":
			p.DobIv = s
		case "headline":
			p.Headline = s
		case "description":
			p.Description = s
		case "name":
			p.Name = s
		case "profilePicture":
			p.ProfilePicture = s
		case "profileBackgroundPicture":
			p.ProfileBackgroundPicture = s
		}
	}
	return nil
}

func (f *fakeProfileRepo) DeleteProfile(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	delete(f.profiles, id)
	return p, nil
}

func (f *fakeProfileRepo) PushSubEntry(ctx context.Context, id primitive.ObjectID, field string, entry interface{}) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	f.lastSubField = field

	switch e := entry.(type) {
	case models.Skill:
		p.Skills = append(p.Skills, e)
	case models.Project:
		p.Projects = append(p.Projects, e)
	case models.Education:
		p.Education = append(p.Education, e)
	case models.Company:
		p.Companies = append(p.Companies, e)
	case models.SocialLink:
		p.SocialLinks = append(p.SocialLinks, e)
	}

	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) PullSubEntry(ctx context.Context, id primitive.ObjectID, field string, subID primitive.ObjectID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}

	found := false
	switch field {
	case "skills":
		kept := p.Skills[:0]
		for _, s := range p.Skills {
			if s.ID == subID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		p.Skills = kept
	case "projects":
		kept := p.Projects[:0]
		for _, s := range p.Projects {
			if s.ID == subID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		p.Projects = kept
	case "education":
		kept := p.Education[:0]
		for _, s := range p.Education {
			if s.ID == subID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		p.Education = kept
	case "companies":
		kept := p.Companies[:0]
		for _, s := range p.Companies {
			if s.ID == subID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		p.Companies = kept
	case "socialLinks":
		kept := p.SocialLinks[:0]
		for _, s := range p.SocialLinks {
			if s.ID == subID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		p.SocialLinks = kept
	}
	if !found {
		return nil, models.ErrSubEntryNotFound
	}

	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) SetSubEntryFields(ctx context.Context, id primitive.ObjectID, field string, subID primitive.ObjectID, set bson.M) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	f.lastSubField = field
	f.lastSet = set

	switch field {
	case "skills":
		for i := range p.Skills {
			if p.Skills[i].ID != subID {
				continue
			}
			for k, v := range set {
				s, _ := v.(string)
				switch k {
				case "name":
					p.Skills[i].Name = s
				case "level":
					p.Skills[i].Level = s
				}
			}
			cp := *p
			return &cp, nil
		}
	case "companies":
		for i := range p.Companies {
			if p.Companies[i].ID != subID {
				continue
			}
			for k, v := range set {
				switch k {
				case "name":
					p.Companies[i].Name = v.(string)
				case "position":
					p.Companies[i].Position = v.(string)
				case "employment":
					p.Companies[i].Employment = v.(string)
				case "location.address":
					p.Companies[i].Location.Address = v.(string)
				case "location.locationtype":
					p.Companies[i].Location.LocationType = v.(string)
				case "startDate.month":
					p.Companies[i].StartDate.Month = v.(string)
				case "startDate.year":
					p.Companies[i].StartDate.Year = v.(int)
				case "endDate.month":
					p.Companies[i].EndDate.Month = v.(string)
				case "endDate.year":
					p.Companies[i].EndDate.Year = v.(int)
				}
			}
			cp := *p
			return &cp, nil
		}
	case "socialLinks":
		for i := range p.SocialLinks {
			if p.SocialLinks[i].ID != subID {
				continue
			}
			for k, v := range set {
				s, _ := v.(string)
				switch k {
				case "name":
					p.SocialLinks[i].Name = s
				case "link":
					p.SocialLinks[i].Link = s
				case "iv":
					p.SocialLinks[i].IV = s
				case "faviconUrl":
					p.SocialLinks[i].FaviconURL = s
				}
			}
			cp := *p
			return &cp, nil
		}
	}

	return nil, models.ErrSubEntryNotFound
}
