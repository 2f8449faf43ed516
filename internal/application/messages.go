package application

import (
	"fmt"
	"strings"

	"github.com/linskybing/workflow-go/internal/domain/entity"
)

type Action string

const (
	ActionAdded     Action = "added"
	ActionCompleted Action = "completed"
)

func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionAdded:
		return ActionAdded, nil
	case ActionCompleted:
		return ActionCompleted, nil
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrInvalidRequest, s)
}

func (a Action) NoteKind() NoteKind {
	if a == ActionCompleted {
		return NoteChecklistCompleted
	}
	return NoteChecklistAdded
}

// MessagePair is the short description and longer detail of one audit note.
type MessagePair struct {
	Description string
	Details     string
}

type messageTemplates struct {
	selfDescription    string
	selfDetails        string
	derivedDescription string
	derivedDetails     string
}

type localeCatalog struct {
	labels  map[entity.EntityType]string
	actions map[Action]messageTemplates
}

// Self templates take the subject. Derived templates take the source label
// and subject (description), or subject, source label and source id (details).
var catalogs = map[string]localeCatalog{
	"en": {
		actions: map[Action]messageTemplates{
			ActionAdded: {
				selfDescription:    "Checklist added: %s",
				selfDetails:        "The checklist \"%s\" was added to this record.",
				derivedDescription: "Checklist added from %s: %s",
				derivedDetails:     "The checklist \"%s\" was added on the linked %s #%d.",
			},
			ActionCompleted: {
				selfDescription:    "Checklist completed: %s",
				selfDetails:        "The checklist \"%s\" was completed on this record.",
				derivedDescription: "Checklist completed from %s: %s",
				derivedDetails:     "The checklist \"%s\" was completed on the linked %s #%d.",
			},
		},
	},
	"fr": {
		labels: map[entity.EntityType]string{
			entity.TypeOffer:        "Offre",
			entity.TypeSale:         "Vente",
			entity.TypeServiceOrder: "Ordre de service",
			entity.TypeDispatch:     "Intervention",
			entity.TypeInstallation: "Installation",
		},
		actions: map[Action]messageTemplates{
			ActionAdded: {
				selfDescription:    "Checklist ajoutée : %s",
				selfDetails:        "La checklist « %s » a été ajoutée à cet enregistrement.",
				derivedDescription: "Checklist ajoutée depuis %s : %s",
				derivedDetails:     "La checklist « %s » a été ajoutée sur %s n°%d lié(e).",
			},
			ActionCompleted: {
				selfDescription:    "Checklist terminée : %s",
				selfDetails:        "La checklist « %s » a été terminée sur cet enregistrement.",
				derivedDescription: "Checklist terminée depuis %s : %s",
				derivedDetails:     "La checklist « %s » a été terminée sur %s n°%d lié(e).",
			},
		},
	},
	"de": {
		labels: map[entity.EntityType]string{
			entity.TypeOffer:        "Angebot",
			entity.TypeSale:         "Verkauf",
			entity.TypeServiceOrder: "Serviceauftrag",
			entity.TypeDispatch:     "Einsatz",
			entity.TypeInstallation: "Installation",
		},
		actions: map[Action]messageTemplates{
			ActionAdded: {
				selfDescription:    "Checkliste hinzugefügt: %s",
				selfDetails:        "Die Checkliste \"%s\" wurde diesem Datensatz hinzugefügt.",
				derivedDescription: "Checkliste hinzugefügt aus %s: %s",
				derivedDetails:     "Die Checkliste \"%s\" wurde im verknüpften Datensatz %s #%d hinzugefügt.",
			},
			ActionCompleted: {
				selfDescription:    "Checkliste abgeschlossen: %s",
				selfDetails:        "Die Checkliste \"%s\" wurde in diesem Datensatz abgeschlossen.",
				derivedDescription: "Checkliste abgeschlossen aus %s: %s",
				derivedDetails:     "Die Checkliste \"%s\" wurde im verknüpften Datensatz %s #%d abgeschlossen.",
			},
		},
	},
}

// resolveLocale maps "fr-CA" or "FR" onto a known catalog, falling back to
// fallback and finally to English.
func resolveLocale(locale, fallback string) localeCatalog {
	for _, candidate := range []string{locale, fallback} {
		tag := strings.ToLower(strings.TrimSpace(candidate))
		if i := strings.IndexAny(tag, "-_"); i > 0 {
			tag = tag[:i]
		}
		if c, ok := catalogs[tag]; ok {
			return c
		}
	}
	return catalogs["en"]
}

func (c localeCatalog) label(t entity.EntityType) string {
	if l, ok := c.labels[t]; ok {
		return l
	}
	return entity.Label(t)
}

// BuildMessages returns the self pair sent to the source record and the
// derived pair sent to every other record in its chain.
func BuildMessages(locale, fallback string, action Action, subject string, source entity.EntityRef) (self, derived MessagePair) {
	c := resolveLocale(locale, fallback)
	tpl, ok := c.actions[action]
	if !ok {
		tpl = c.actions[ActionAdded]
	}
	label := c.label(source.EntityType)

	self = MessagePair{
		Description: fmt.Sprintf(tpl.selfDescription, subject),
		Details:     fmt.Sprintf(tpl.selfDetails, subject),
	}
	derived = MessagePair{
		Description: fmt.Sprintf(tpl.derivedDescription, label, subject),
		Details:     fmt.Sprintf(tpl.derivedDetails, subject, label, source.EntityID),
	}
	return self, derived
}
