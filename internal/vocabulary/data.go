package vocabulary

// DefaultGroups contém a tabela Wabo ↔ Omgevingswet usada quando nenhum
// arquivo de vocabulário é configurado
var DefaultGroups = []TermGroup{
	// Bouw
	{Legacy: []string{"bouwvergunning", "bouwwerk"}, Current: []string{"bouwactiviteit", "bouwactiviteit (omgevingsplan)"}},
	// Sloop
	{Legacy: []string{"sloopvergunning", "slopen"}, Current: []string{"sloopactiviteit", "sloopwerkzaamheden"}},
	// Kap
	{Legacy: []string{"kapvergunning", "bomenkap", "kappen"}, Current: []string{"omgevingsplanactiviteit (kap)", "kap"}},
	// Aanleg
	{Legacy: []string{"aanlegvergunning", "aanleg"}, Current: []string{"aanlegactiviteit", "omgevingsplanactiviteit"}},
	// Monumenten
	{Legacy: []string{"monumentenvergunning"}, Current: []string{"rijksmonumentenactiviteit", "monument"}},
	// Termo guarda-chuva da Wabo
	{Legacy: []string{"omgevingsvergunning"}, Current: []string{"omgevingsplanactiviteit", "bouwactiviteit", "sloopactiviteit"}},
}

// Default constrói um vocabulário novo a partir de DefaultGroups
func Default() *Vocabulary {
	return MustNew(DefaultGroups)
}
