package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

var _ services.PrayerAPI = (*PrayerClient)(nil)

// PrayerClient fetches daily prayer times from the Aladhan API using
// calculation method 2 (ISNA).
type PrayerClient struct {
	baseURL string
	client  *http.Client
}

func NewPrayerClient(baseURL string) *PrayerClient {
	return &PrayerClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *PrayerClient) TimingsByCity(ctx context.Context, city string, date time.Time) (*domain.PrayerSchedule, error) {
	// Aladhan expects DD-MM-YYYY in the path.
	endpoint := fmt.Sprintf("%s/v1/timingsByCity/%s?city=%s&country=Indonesia&method=2",
		c.baseURL, date.Format("02-01-2006"), url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrContentGateway, resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Timings struct {
				Fajr    string `json:"Fajr"`
				Dhuhr   string `json:"Dhuhr"`
				Asr     string `json:"Asr"`
				Maghrib string `json:"Maghrib"`
				Isha    string `json:"Isha"`
			} `json:"timings"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrContentGateway, err)
	}

	return &domain.PrayerSchedule{
		City:    city,
		Date:    date.Format(domain.DateLayout),
		Fajr:    payload.Data.Timings.Fajr,
		Dhuhr:   payload.Data.Timings.Dhuhr,
		Asr:     payload.Data.Timings.Asr,
		Maghrib: payload.Data.Timings.Maghrib,
		Isha:    payload.Data.Timings.Isha,
	}, nil
}
