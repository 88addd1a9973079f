// Package locales holds the interface translations of the site and admin.
package locales

import (
	"github.com/dmitrymomot/cmsnav/core/i18n"
)

// Namespace is the single translation namespace used by the application.
const Namespace = "cms"

var en = i18n.M{
	"site": i18n.M{
		"title":       "Our work",
		"projects":    "Projects",
		"no_projects": "Nothing to show yet.",
		"not_found":   "The page you were looking for doesn't exist.",
		"visit":       "Visit",
	},
	"admin": i18n.M{
		"projects": i18n.M{
			"title":          "Projects",
			"add":            "Add New Project",
			"edit":           "Edit this project",
			"remove":         "Remove this project forever",
			"remove_confirm": "Are you sure you want to remove '%{title}'?",
			"empty":          "There are no projects yet. Click \"Add New Project\" to add your first project.",
			"reorder":        "Save order",
			"new_heading":    "Add New Project",
			"edit_heading":   "Edit '%{title}'",
		},
		"save":     "Save",
		"cancel":   "Cancel",
		"created":  "'%{title}' was successfully added.",
		"updated":  "'%{title}' was successfully updated.",
		"removed":  "'%{title}' was successfully removed.",
		"reordered": "The order was saved.",
		"problems": "There were problems with the following fields:",
	},
	"fields": i18n.M{
		"Title":       "Title",
		"Link":        "Link",
		"LinkText":    "Link text",
		"Description": "Description",
	},
	"validation": i18n.M{
		"required": "%{field} can't be blank",
		"max":      "%{field} is too long (maximum is %{max} characters)",
		"min":      "%{field} is too short (minimum is %{min} characters)",
		"url":      "%{field} is not a valid URL",
		"taken":    "%{field} has already been taken",
	},
}

var de = i18n.M{
	"site": i18n.M{
		"title":       "Unsere Arbeit",
		"projects":    "Projekte",
		"no_projects": "Noch nichts zu sehen.",
		"not_found":   "Die gesuchte Seite existiert nicht.",
		"visit":       "Besuchen",
	},
	"admin": i18n.M{
		"projects": i18n.M{
			"title":          "Projekte",
			"add":            "Neues Projekt hinzufügen",
			"edit":           "Dieses Projekt bearbeiten",
			"remove":         "Dieses Projekt endgültig entfernen",
			"remove_confirm": "Soll '%{title}' wirklich entfernt werden?",
			"empty":          "Es gibt noch keine Projekte.",
			"reorder":        "Reihenfolge speichern",
			"new_heading":    "Neues Projekt hinzufügen",
			"edit_heading":   "'%{title}' bearbeiten",
		},
		"save":     "Speichern",
		"cancel":   "Abbrechen",
		"created":  "'%{title}' wurde erfolgreich hinzugefügt.",
		"updated":  "'%{title}' wurde erfolgreich aktualisiert.",
		"removed":  "'%{title}' wurde erfolgreich entfernt.",
		"reordered": "Die Reihenfolge wurde gespeichert.",
		"problems": "Folgende Felder enthalten Fehler:",
	},
	"fields": i18n.M{
		"Title":       "Titel",
		"Link":        "Link",
		"LinkText":    "Linktext",
		"Description": "Beschreibung",
	},
	"validation": i18n.M{
		"required": "%{field} muss ausgefüllt werden",
		"max":      "%{field} ist zu lang (höchstens %{max} Zeichen)",
		"min":      "%{field} ist zu kurz (mindestens %{min} Zeichen)",
		"url":      "%{field} ist keine gültige URL",
		"taken":    "%{field} ist bereits vergeben",
	},
}

// New builds the translation store. defaultLang must be "en" or "de".
func New(defaultLang string, opts ...i18n.Option) (*i18n.I18n, error) {
	if defaultLang == "" {
		defaultLang = "en"
	}
	base := []i18n.Option{
		i18n.WithDefaultLanguage(defaultLang),
		i18n.WithTranslations("en", Namespace, en),
		i18n.WithTranslations("de", Namespace, de),
	}
	return i18n.New(append(base, opts...)...)
}
