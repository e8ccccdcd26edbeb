package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// PublicHoliday is one entry from the Nager.Date public-holiday API.
// Date is already YYYY-MM-DD; LocalName is the holiday's name in the
// country's own language.
type PublicHoliday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

type Client interface {
	// PublicHolidays fetches the public holidays of a country (ISO 3166-1
	// alpha-2 code) for a given year.
	PublicHolidays(ctx context.Context, countryCode string, year int) ([]PublicHoliday, error)
}

type ClientImpl struct {
	baseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string) *ClientImpl {
	return &ClientImpl{
		baseUrl: baseUrl,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *ClientImpl) PublicHolidays(ctx context.Context, countryCode string, year int) ([]PublicHoliday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseUrl, year, countryCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("public holidays request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("public holidays request for %s/%d returned status %d", countryCode, year, resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var holidays []PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("could not decode public holidays response: %w", err)
	}
	return holidays, nil
}
