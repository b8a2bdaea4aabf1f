package constants

// Gemeente identifica um município pelo nome e código CBS
type Gemeente struct {
	Name string
	Code string
}

// GemeentenNoordBrabant contém os 56 municípios de Noord-Brabant
var GemeentenNoordBrabant = []Gemeente{
	{Name: "Alphen-Chaam", Code: "GM1723"},
	{Name: "Altena", Code: "GM1959"},
	{Name: "Asten", Code: "GM0743"},
	{Name: "Baarle-Nassau", Code: "GM0744"},
	{Name: "Bergeijk", Code: "GM1724"},
	{Name: "Bergen op Zoom", Code: "GM0748"},
	{Name: "Bernheze", Code: "GM1721"},
	{Name: "Best", Code: "GM0753"},
	{Name: "Bladel", Code: "GM1728"},
	{Name: "Boekel", Code: "GM0755"},
	{Name: "Boxtel", Code: "GM0757"},
	{Name: "Breda", Code: "GM0758"},
	{Name: "Cranendonck", Code: "GM1706"},
	{Name: "Deurne", Code: "GM0762"},
	{Name: "Dongen", Code: "GM0766"},
	{Name: "Drimmelen", Code: "GM1719"},
	{Name: "Eersel", Code: "GM0770"},
	{Name: "Eindhoven", Code: "GM0772"},
	{Name: "Etten-Leur", Code: "GM0777"},
	{Name: "Geertruidenberg", Code: "GM0779"},
	{Name: "Geldrop-Mierlo", Code: "GM1771"},
	{Name: "Gemert-Bakel", Code: "GM1652"},
	{Name: "Gilze en Rijen", Code: "GM0784"},
	{Name: "Goirle", Code: "GM0785"},
	{Name: "Halderberge", Code: "GM1655"},
	{Name: "Heeze-Leende", Code: "GM1658"},
	{Name: "Helmond", Code: "GM0794"},
	{Name: "'s-Hertogenbosch", Code: "GM0796"},
	{Name: "Heusden", Code: "GM0797"},
	{Name: "Hilvarenbeek", Code: "GM0798"},
	{Name: "Laarbeek", Code: "GM1659"},
	{Name: "Land van Cuijk", Code: "GM1982"},
	{Name: "Loon op Zand", Code: "GM0809"},
	{Name: "Maashorst", Code: "GM1991"},
	{Name: "Meierijstad", Code: "GM1948"},
	{Name: "Moerdijk", Code: "GM1709"},
	{Name: "Nuenen, Gerwen en Nederwetten", Code: "GM0820"},
	{Name: "Oirschot", Code: "GM0823"},
	{Name: "Oisterwijk", Code: "GM0824"},
	{Name: "Oosterhout", Code: "GM0826"},
	{Name: "Oss", Code: "GM0828"},
	{Name: "Reusel-De Mierden", Code: "GM1667"},
	{Name: "Roosendaal", Code: "GM1674"},
	{Name: "Rucphen", Code: "GM0840"},
	{Name: "Sint-Michielsgestel", Code: "GM0845"},
	{Name: "Someren", Code: "GM0847"},
	{Name: "Son en Breugel", Code: "GM0848"},
	{Name: "Steenbergen", Code: "GM0851"},
	{Name: "Tilburg", Code: "GM0855"},
	{Name: "Valkenswaard", Code: "GM0858"},
	{Name: "Veldhoven", Code: "GM0861"},
	{Name: "Vught", Code: "GM0865"},
	{Name: "Waalre", Code: "GM0866"},
	{Name: "Waalwijk", Code: "GM0867"},
	{Name: "Woensdrecht", Code: "GM0873"},
	{Name: "Zundert", Code: "GM0879"},
}

// NomesGemeenten retorna apenas os nomes, na ordem do catálogo
func NomesGemeenten() []string {
	names := make([]string, len(GemeentenNoordBrabant))
	for i, g := range GemeentenNoordBrabant {
		names[i] = g.Name
	}
	return names
}
