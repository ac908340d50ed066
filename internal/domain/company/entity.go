package company

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("company name is required")
	ErrEmptyIndustry = errors.New("company industry is required")
)

// Company is the host organization behind one or more events. Branding
// colors are carried so the public registration pages can be themed.
type Company struct {
	id             uuid.UUID
	name           string
	description    string
	industry       string
	logoURL        *string
	primaryColor   HexColor
	secondaryColor HexColor
	accentColor    HexColor
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCompany(name, description, industry string, logoURL *string, primary, secondary, accent string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, ErrEmptyIndustry
	}

	primaryColor, err := NewHexColor(primary)
	if err != nil {
		return nil, err
	}
	secondaryColor, err := NewHexColor(secondary)
	if err != nil {
		return nil, err
	}
	accentColor, err := NewHexColor(accent)
	if err != nil {
		return nil, err
	}

	return &Company{
		id:             uuid.New(),
		name:           name,
		description:    strings.TrimSpace(description),
		industry:       industry,
		logoURL:        logoURL,
		primaryColor:   primaryColor,
		secondaryColor: secondaryColor,
		accentColor:    accentColor,
		isActive:       true,
	}, nil
}

func ReconstructCompany(
	id uuid.UUID,
	name, description, industry string,
	logoURL *string,
	primary, secondary, accent HexColor,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Company {
	return &Company{
		id:             id,
		name:           name,
		description:    description,
		industry:       industry,
		logoURL:        logoURL,
		primaryColor:   primary,
		secondaryColor: secondary,
		accentColor:    accent,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Company) ID() uuid.UUID            { return c.id }
func (c *Company) Name() string             { return c.name }
func (c *Company) Description() string      { return c.description }
func (c *Company) Industry() string         { return c.industry }
func (c *Company) LogoURL() *string         { return c.logoURL }
func (c *Company) PrimaryColor() HexColor   { return c.primaryColor }
func (c *Company) SecondaryColor() HexColor { return c.secondaryColor }
func (c *Company) AccentColor() HexColor    { return c.accentColor }
func (c *Company) IsActive() bool           { return c.isActive }
func (c *Company) CreatedAt() time.Time     { return c.createdAt }
func (c *Company) UpdatedAt() time.Time     { return c.updatedAt }
