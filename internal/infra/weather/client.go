package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase/queries"
)

// Client fetches current conditions from OpenWeather. Every failure path
// returns nil: weather is decoration and must never break a hotel page.
type Client struct {
	cfg        config.WeatherConfig
	httpClient *http.Client
}

func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type currentWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

func (c *Client) CurrentWeather(ctx context.Context, location string) *queries.WeatherInfo {
	if c.cfg.APIKey == "" || location == "" {
		return nil
	}

	endpoint := c.cfg.BaseURL + "/weather?" + url.Values{
		"q":     {location},
		"units": {"metric"},
		"appid": {c.cfg.APIKey},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("weather lookup failed", "location", location, "error", err.Error())
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("weather lookup rejected", "location", location, "status", resp.StatusCode)
		return nil
	}

	var body currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}
	if len(body.Weather) == 0 {
		return nil
	}

	return &queries.WeatherInfo{
		TempCelsius: body.Main.Temp,
		Condition:   body.Weather[0].Main,
		Icon:        body.Weather[0].Icon,
	}
}
