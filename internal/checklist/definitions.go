package checklist

// Definitions maps mortgage terms to their base explanation in Dutch. These
// get woven into advice texts by the explanation enhancer.
var Definitions = map[string]string{
	"NHG": `De Nationale Hypotheek Garantie (NHG) is een garantie op hypotheken. Met NHG bent u verzekerd van een verantwoorde hypotheek die aansluit op uw situatie. Bovendien kunt u met NHG profiteren van een rentevoordeel, waardoor uw maandlasten lager zijn.

Voordelen:
- Lagere hypotheekrente
- Bescherming bij onverwachte gebeurtenissen
- Verantwoorde hypotheek`,

	"annuïteitenhypotheek": `Bij een annuïteitenhypotheek blijft het maandbedrag gelijk tijdens de rentevaste periode. In het begin betaalt u veel rente en lost u weinig af. Naarmate de looptijd vordert, betaalt u minder rente en lost u meer af.

Kenmerken:
- Gelijkblijvende maandlasten
- Fiscaal voordelig aan het begin
- Geleidelijke opbouw eigendom`,

	"rentevaste periode": `De rentevaste periode is de periode waarin uw hypotheekrente gelijk blijft. Hoe langer deze periode, hoe meer zekerheid u heeft over uw maandlasten.

Aandachtspunten:
- Langere periode = hogere rente
- Meer zekerheid over maandlasten
- Bescherming tegen rentestijgingen`,

	"maandlasten": `Maandlasten zijn de totale kosten die u maandelijks betaalt voor uw hypotheek.

Componenten:
- Rente
- Aflossing (bij annuïtair of lineair)
- Eventuele verzekeringspremies`,

	"werkloosheidsverzekering": `Een werkloosheidsverzekering kan financiële zekerheid bieden bij onvrijwillig ontslag.

Aandachtspunten:
- Alleen mogelijk met vast dienstverband
- Dekking voor bepaalde periode
- Wachttijd voor uitkering
- Premiekosten afwegen tegen risico`,

	"woonlastenverzekering": `Een woonlastenverzekering helpt bij het betalen van uw maandelijkse woonlasten in onverwachte situaties.

Kenmerken:
- Dekking bij arbeidsongeschiktheid of werkloosheid
- Maximale dekking meestal 125% van woonlasten
- Uitkeringsduur is beperkt (vaak 12-24 maanden)`,

	"nabestaandenpensioen": `Het nabestaandenpensioen is een uitkering voor uw partner en/of kinderen na uw overlijden, meestal gekoppeld aan uw pensioenregeling.

Kenmerken:
- Standaard onderdeel pensioenregeling
- Uitkering voor partner
- Extra uitkering voor kinderen tot 21 jaar of studerend`,

	"anw_hiaat": `Een ANW-hiaatverzekering biedt extra financiële zekerheid voor uw nabestaanden, onafhankelijk van hun eigen inkomen.

Kenmerken:
- Vooraf vastgesteld uitkeringsbedrag
- Onafhankelijk van partnerinkomen
- Aanvulling op nabestaandenpensioen`,
}

// Definition returns the base explanation for a term
func Definition(term string) (string, bool) {
	d, ok := Definitions[term]
	return d, ok
}

// Terms returns all known glossary terms
func Terms() []string {
	out := make([]string, 0, len(Definitions))
	for t := range Definitions {
		out = append(out, t)
	}
	return out
}
