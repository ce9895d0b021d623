package console

import (
	"context"
	"strings"

	"github.com/jhoicas/rrhh-console/internal/infrastructure/restcountries"
)

func (c *Console) countryMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Países ---\n")
		c.printf("1. Buscar por nombre\n2. Buscar por nombre exacto\n3. Buscar por código ISO\n4. Listar por región\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1", "2":
			name, err := c.prompt("Nombre del país: ")
			if err != nil {
				return err
			}
			list, err := c.countries.ByName(ctx, name, opt == "2")
			if err != nil {
				c.reportError("country.byName", err)
				continue
			}
			c.printCountries(list)
		case "3":
			code, err := c.prompt("Código ISO (alpha-2 o alpha-3): ")
			if err != nil {
				return err
			}
			info, err := c.countries.ByCode(ctx, code)
			if err != nil {
				c.reportError("country.byCode", err)
				continue
			}
			if info == nil {
				c.printf("País no encontrado.\n")
				continue
			}
			c.printCountryDetail(*info)
		case "4":
			region, err := c.prompt("Región (africa/americas/asia/europe/oceania): ")
			if err != nil {
				return err
			}
			list, err := c.countries.ByRegion(ctx, region)
			if err != nil {
				c.reportError("country.byRegion", err)
				continue
			}
			if len(list) == 0 {
				c.printf("Sin resultados.\n")
				continue
			}
			for _, info := range list {
				c.printf("%s %s (%s) - %s\n", info.FlagEmoji, info.CommonName, info.CCA2, info.Subregion)
			}
			c.printf("Total: %d\n", len(list))
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}

func (c *Console) printCountries(list []restcountries.CountryInfo) {
	switch len(list) {
	case 0:
		c.printf("País no encontrado.\n")
	case 1:
		c.printCountryDetail(list[0])
	default:
		for _, info := range list {
			c.printf("%s %s (%s) - %s\n", info.FlagEmoji, info.CommonName, info.CCA2, info.Region)
		}
		c.printf("Total: %d\n", len(list))
	}
}

func (c *Console) printCountryDetail(info restcountries.CountryInfo) {
	c.printf("%s %s (%s)\n", info.FlagEmoji, info.CommonName, info.OfficialName)
	c.printf("Códigos:    %s / %s\n", info.CCA2, info.CCA3)
	c.printf("Región:     %s (%s)\n", info.Region, info.Subregion)
	c.printf("Capital:    %s\n", strings.Join(info.Capital, ", "))
	c.printf("Población:  %d\n", info.Population)
	c.printf("Área:       %.0f km²\n", info.Area)
	c.printf("Monedas:    %s\n", strings.Join(info.Currencies, "; "))
	c.printf("Idiomas:    %s\n", strings.Join(info.Languages, ", "))
	c.printf("Husos:      %s\n", strings.Join(info.Timezones, ", "))
	c.printf("Bandera:    %s\n", info.FlagPNG)
	c.printf("Mapa:       %s\n", info.MapsURL)
}
