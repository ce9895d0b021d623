// Package restcountries consulta el servicio público restcountries.com
// (v3.1) para obtener información de países por nombre, código o región.
// Es un colaborador de solo lectura consumido desde la consola.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// CountryInfo es el registro normalizado que devuelve el cliente. Las listas
// (monedas, idiomas, zonas horarias) se aplanan a strings listos para
// mostrar por consola.
type CountryInfo struct {
	CommonName   string
	OfficialName string
	CCA2         string
	CCA3         string
	Region       string
	Subregion    string
	Capital      []string
	Population   int64
	Area         float64
	Currencies   []string // "Peso chileno (CLP, $)"
	Languages    []string
	Timezones    []string
	FlagPNG      string
	FlagEmoji    string
	MapsURL      string
}

// Client habla HTTP JSON con restcountries.com.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin barra final, por ejemplo
// "https://restcountries.com/v3.1".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ByName busca países por nombre. Con fullText exige coincidencia exacta del
// nombre común u oficial; sin él, subcadena. Nombre sin resultados → lista
// vacía, no error.
func (c *Client) ByName(ctx context.Context, name string, fullText bool) ([]CountryInfo, error) {
	q := ""
	if fullText {
		q = "?fullText=true"
	}
	return c.fetch(ctx, "/name/"+url.PathEscape(strings.TrimSpace(name))+q)
}

// ByCode busca un país por código ISO alpha-2 o alpha-3. Código desconocido
// → nil, no error.
func (c *Client) ByCode(ctx context.Context, code string) (*CountryInfo, error) {
	list, err := c.fetch(ctx, "/alpha/"+url.PathEscape(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// ByRegion lista los países de una región (africa, americas, asia, europe,
// oceania). Región desconocida → lista vacía.
func (c *Client) ByRegion(ctx context.Context, region string) ([]CountryInfo, error) {
	return c.fetch(ctx, "/region/"+url.PathEscape(strings.TrimSpace(region)))
}

func (c *Client) fetch(ctx context.Context, path string) ([]CountryInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("restcountries: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries: petición: %w", err)
	}
	defer resp.Body.Close()

	// El servicio responde 404 cuando la búsqueda no casa con ningún país.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restcountries: estado inesperado %d", resp.StatusCode)
	}

	var raw []rawCountry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("restcountries: decodificar respuesta: %w", err)
	}

	out := make([]CountryInfo, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize())
	}
	return out, nil
}

// ── Estructuras del wire format v3.1 ─────────────────────────────────────────

type rawCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA2       string   `json:"cca2"`
	CCA3       string   `json:"cca3"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
	Timezones []string          `json:"timezones"`
	Flags     struct {
		PNG string `json:"png"`
	} `json:"flags"`
	Flag string `json:"flag"`
	Maps struct {
		GoogleMaps string `json:"googleMaps"`
	} `json:"maps"`
}

func (r rawCountry) normalize() CountryInfo {
	currencies := make([]string, 0, len(r.Currencies))
	for code, cur := range r.Currencies {
		currencies = append(currencies, fmt.Sprintf("%s (%s, %s)", cur.Name, code, cur.Symbol))
	}
	sort.Strings(currencies)

	languages := make([]string, 0, len(r.Languages))
	for _, lang := range r.Languages {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	return CountryInfo{
		CommonName:   r.Name.Common,
		OfficialName: r.Name.Official,
		CCA2:         r.CCA2,
		CCA3:         r.CCA3,
		Region:       r.Region,
		Subregion:    r.Subregion,
		Capital:      r.Capital,
		Population:   r.Population,
		Area:         r.Area,
		Currencies:   currencies,
		Languages:    languages,
		Timezones:    r.Timezones,
		FlagPNG:      r.Flags.PNG,
		FlagEmoji:    r.Flag,
		MapsURL:      r.Maps.GoogleMaps,
	}
}
