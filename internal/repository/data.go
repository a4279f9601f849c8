package repository

import "github.com/shenikar/climate_risk_grid/internal/models"

// seedMunicipalities - приоритетные муниципалитеты (IBGE, перепись 2022)
var seedMunicipalities = []models.Municipality{
	{
		Location:  models.Location{AreaCode: "3550308", Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333},
		State:     "SP",
		StateName: "São Paulo",
		AreaKm2:   1521.11,
		Demographics: models.Demographics{
			Population: 11451245, CriticalInfrastructure: 450, VulnerablePopulationPct: 0.28,
			GDPPerCapitaBRL: 52796, GreenAreaPerCapitaM2: 13.2,
		},
	},
	{
		Location:  models.Location{AreaCode: "3304557", Name: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729},
		State:     "RJ",
		StateName: "Rio de Janeiro",
		AreaKm2:   1200.28,
		Demographics: models.Demographics{
			Population: 6211223, CriticalInfrastructure: 320, VulnerablePopulationPct: 0.35,
			GDPPerCapitaBRL: 48275, GreenAreaPerCapitaM2: 54.8,
		},
	},
	{
		Location:  models.Location{AreaCode: "2927408", Name: "Salvador", Latitude: -12.9714, Longitude: -38.5014},
		State:     "BA",
		StateName: "Bahia",
		AreaKm2:   692.82,
		Demographics: models.Demographics{
			Population: 2886698, CriticalInfrastructure: 180, VulnerablePopulationPct: 0.32,
			GDPPerCapitaBRL: 22891, GreenAreaPerCapitaM2: 18.5,
		},
	},
	{
		Location:  models.Location{AreaCode: "2304400", Name: "Fortaleza", Latitude: -3.7172, Longitude: -38.5433},
		State:     "CE",
		StateName: "Ceará",
		AreaKm2:   314.93,
		Demographics: models.Demographics{
			Population: 2428678, CriticalInfrastructure: 150, VulnerablePopulationPct: 0.38,
			GDPPerCapitaBRL: 21065, GreenAreaPerCapitaM2: 12.1,
		},
	},
	{
		Location:  models.Location{AreaCode: "5300108", Name: "Brasília", Latitude: -15.7939, Longitude: -47.8828},
		State:     "DF",
		StateName: "Distrito Federal",
		AreaKm2:   5760.78,
		Demographics: models.Demographics{
			Population: 2817068, CriticalInfrastructure: 220, VulnerablePopulationPct: 0.18,
			GDPPerCapitaBRL: 79977, GreenAreaPerCapitaM2: 95.3,
		},
	},
	{
		Location:  models.Location{AreaCode: "4106902", Name: "Curitiba", Latitude: -25.4284, Longitude: -49.2733},
		State:     "PR",
		StateName: "Paraná",
		AreaKm2:   430.90,
		Demographics: models.Demographics{
			Population: 1773718, CriticalInfrastructure: 200, VulnerablePopulationPct: 0.15,
			GDPPerCapitaBRL: 45327, GreenAreaPerCapitaM2: 64.5,
		},
	},
	{
		Location:  models.Location{AreaCode: "1302603", Name: "Manaus", Latitude: -3.1190, Longitude: -60.0217},
		State:     "AM",
		StateName: "Amazonas",
		AreaKm2:   11401.06,
		Demographics: models.Demographics{
			Population: 2063547, CriticalInfrastructure: 140, VulnerablePopulationPct: 0.42,
			GDPPerCapitaBRL: 29341, GreenAreaPerCapitaM2: 312.7,
		},
	},
	{
		Location:  models.Location{AreaCode: "2611606", Name: "Recife", Latitude: -8.0476, Longitude: -34.8770},
		State:     "PE",
		StateName: "Pernambuco",
		AreaKm2:   218.50,
		Demographics: models.Demographics{
			Population: 1488920, CriticalInfrastructure: 160, VulnerablePopulationPct: 0.44,
			GDPPerCapitaBRL: 28237, GreenAreaPerCapitaM2: 9.8,
		},
	},
	{
		Location:  models.Location{AreaCode: "4314902", Name: "Porto Alegre", Latitude: -30.0346, Longitude: -51.2177},
		State:     "RS",
		StateName: "Rio Grande do Sul",
		AreaKm2:   496.68,
		Demographics: models.Demographics{
			Population: 1332570, CriticalInfrastructure: 180, VulnerablePopulationPct: 0.22,
			GDPPerCapitaBRL: 48149, GreenAreaPerCapitaM2: 23.4,
		},
	},
	{
		Location:  models.Location{AreaCode: "1501402", Name: "Belém", Latitude: -1.4558, Longitude: -48.5039},
		State:     "PA",
		StateName: "Pará",
		AreaKm2:   1059.46,
		Demographics: models.Demographics{
			Population: 1303389, CriticalInfrastructure: 120, VulnerablePopulationPct: 0.48,
			GDPPerCapitaBRL: 20608, GreenAreaPerCapitaM2: 15.2,
		},
	},
}
