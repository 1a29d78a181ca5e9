// Package checklist holds the static intake checklist for mortgage advice
// conversations: the section/point catalog, scripted question templates and
// the term glossary.
package checklist

import (
	"strings"

	"intakeflow/internal/model"
)

const (
	SectionLeningdeel   model.SectionID = "leningdeel"
	SectionWerkloosheid model.SectionID = "werkloosheid"
	SectionAOW          model.SectionID = "aow"
)

// DefaultCatalog returns the mandatory advice checklist. Section order is
// the order questions get asked in.
func DefaultCatalog() *model.Catalog {
	return &model.Catalog{
		Sections: []model.Section{
			{
				ID:    SectionLeningdeel,
				Title: "Leningdeel",
				Points: []string{
					"Leningbedrag en onderbouwing",
					"NHG keuze en motivatie",
					"Rentevaste periode met onderbouwing",
					"Hypotheekvorm met uitleg",
					"Fiscale aspecten en gevolgen",
					"Maandlasten berekening",
				},
			},
			{
				ID:    SectionWerkloosheid,
				Title: "Werkloosheid",
				Points: []string{
					"Huidige arbeidssituatie",
					"Werkloosheidsrisico inschatting",
					"Wensen bij werkloosheid",
					"Benodigde dekking en verzekeringen",
					"Impact op maandlasten",
				},
			},
			{
				ID:    SectionAOW,
				Title: "AOW",
				Points: []string{
					"AOW-leeftijd en planning",
					"Hypotheeksituatie bij AOW",
					"Pensioenopbouw en inkomen",
					"Wensen na pensionering",
					"Vermogensopbouw planning",
				},
			},
		},
	}
}

// scripted questions per checklist point, used when the question generator
// is unavailable
var questionTemplates = map[model.SectionID]map[string]string{
	SectionLeningdeel: {
		"Leningbedrag en onderbouwing":        "Wat is het exacte leningbedrag dat je nodig hebt en waarom?",
		"NHG keuze en motivatie":              "Heb je al nagedacht over Nationale Hypotheek Garantie (NHG)?",
		"Rentevaste periode met onderbouwing": "Welke rentevaste periode heeft je voorkeur en waarom?",
		"Hypotheekvorm met uitleg":            "Welke hypotheekvorm spreekt je het meeste aan?",
		"Fiscale aspecten en gevolgen":        "Ben je bekend met de fiscale voordelen en gevolgen van verschillende hypotheekvormen?",
		"Maandlasten berekening":              "Welke maandlasten heb je voor ogen?",
	},
	SectionWerkloosheid: {
		"Huidige arbeidssituatie":            "Kun je je huidige arbeidssituatie toelichten?",
		"Werkloosheidsrisico inschatting":    "Hoe schat je het risico op werkloosheid in je sector in?",
		"Wensen bij werkloosheid":            "Wat zou je willen regelen voor het geval je werkloos raakt?",
		"Benodigde dekking en verzekeringen": "Heb je gedacht aan een werkloosheidsverzekering of woonlastenverzekering?",
		"Impact op maandlasten":              "Hoe zou werkloosheid je hypotheeklasten beïnvloeden?",
	},
	SectionAOW: {
		"AOW-leeftijd en planning":    "Weet je wanneer je AOW gaat ontvangen?",
		"Hypotheeksituatie bij AOW":   "Hoe zie je je hypotheek voor je als je met pensioen gaat?",
		"Pensioenopbouw en inkomen":   "Hoe bouw je pensioen op en wat wordt je inkomen na pensionering?",
		"Wensen na pensionering":      "Wat zijn je plannen voor na je pensionering?",
		"Vermogensopbouw planning":    "Heb je al nagedacht over vermogensopbouw voor later?",
	},
}

// TemplateQuestion returns the scripted question for a checklist point,
// falling back to a generic phrasing for unknown points
func TemplateQuestion(section model.SectionID, point string) string {
	if byPoint, ok := questionTemplates[section]; ok {
		if q, ok := byPoint[point]; ok {
			return q
		}
	}
	return "Kun je meer vertellen over " + strings.ToLower(point) + "?"
}
