// Package forms builds the huh forms used to edit the profile and settings.
package forms

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
)

// Theme picks the form theme matching the app theme
func Theme(dark bool) *huh.Theme {
	if dark {
		return huh.ThemeDracula()
	}
	return huh.ThemeCharm()
}

// ProfileFormModel backs the profile form fields
type ProfileFormModel struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Bio      string
	JoinDate string
}

func NewProfileFormModel(p models.Profile) *ProfileFormModel {
	return &ProfileFormModel{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Bio:      p.Bio,
		JoinDate: p.JoinDate,
	}
}

// Profile converts the form back to a profile
func (fm *ProfileFormModel) Profile() models.Profile {
	return models.Profile{
		Name:     fm.Name,
		Email:    fm.Email,
		Phone:    fm.Phone,
		Location: fm.Location,
		Bio:      fm.Bio,
		JoinDate: fm.JoinDate,
	}
}

// ValidateEmail accepts an empty value or a single address
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateDate accepts YYYY-MM-DD
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date, use YYYY-MM-DD")
	}
	return nil
}

// NewProfileForm creates the form for editing profile details
func NewProfileForm(fm *ProfileFormModel, dark bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(ValidateEmail),
			huh.NewInput().
				Title("Phone").
				Value(&fm.Phone),
			huh.NewInput().
				Title("Location").
				Value(&fm.Location),
			huh.NewText().
				Title("Bio").
				Value(&fm.Bio),
			huh.NewInput().
				Title("Member since (YYYY-MM-DD)").
				Value(&fm.JoinDate).
				Validate(ValidateDate),
		),
	).WithTheme(Theme(dark))
}

// SettingsFormModel backs the settings form fields
type SettingsFormModel struct {
	models.Settings
}

// NewSettingsForm creates the form for editing preferences
func NewSettingsForm(fm *SettingsFormModel, dark bool) *huh.Form {
	languages := make([]huh.Option[string], 0, len(constants.Languages))
	for _, l := range constants.Languages {
		languages = append(languages, huh.NewOption(l, l))
	}
	themes := make([]huh.Option[string], 0, len(constants.Themes))
	for _, t := range constants.Themes {
		themes = append(themes, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Push Notifications").
				Description("Receive reminders and updates").
				Value(&fm.Notifications),
			huh.NewConfirm().
				Title("Sound Effects").
				Description("Play sounds for interactions").
				Value(&fm.SoundEnabled),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Anonymous Data Sharing").
				Description("Help improve the app with anonymous usage data").
				Value(&fm.DataSharing),
			huh.NewConfirm().
				Title("Automatic Backup").
				Description("Back up your data each time the app starts").
				Value(&fm.AutoBackup),
			huh.NewConfirm().
				Title("Show Sensitive Data").
				Description("Display full journal entries in previews").
				Value(&fm.ShowSensitiveData),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(languages...).
				Value(&fm.Language),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&fm.Theme),
		),
	).WithTheme(Theme(dark))
}
