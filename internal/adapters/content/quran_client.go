package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

var _ services.QuranAPI = (*QuranClient)(nil)

// QuranClient reads surah text, transliteration, translation and verse
// audio from the public gading.dev Quran API.
type QuranClient struct {
	baseURL string
	client  *http.Client
}

func NewQuranClient(baseURL string) *QuranClient {
	return &QuranClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type quranName struct {
	Short           string `json:"short"`
	Transliteration struct {
		ID string `json:"id"`
	} `json:"transliteration"`
	Translation struct {
		ID string `json:"id"`
	} `json:"translation"`
}

type quranSurahMeta struct {
	Number     int       `json:"number"`
	Name       quranName `json:"name"`
	Revelation struct {
		ID string `json:"id"`
	} `json:"revelation"`
	NumberOfVerses int `json:"numberOfVerses"`
}

type quranVerse struct {
	Number struct {
		InSurah int `json:"inSurah"`
	} `json:"number"`
	Text struct {
		Arab            string `json:"arab"`
		Transliteration struct {
			En string `json:"en"`
		} `json:"transliteration"`
	} `json:"text"`
	Translation struct {
		ID string `json:"id"`
	} `json:"translation"`
	Audio struct {
		Primary string `json:"primary"`
	} `json:"audio"`
}

type quranSurahDetail struct {
	quranSurahMeta
	Verses []quranVerse `json:"verses"`
}

func (c *QuranClient) ListSurah(ctx context.Context) ([]domain.SurahMeta, error) {
	var payload struct {
		Data []quranSurahMeta `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/surah", &payload); err != nil {
		return nil, err
	}

	list := make([]domain.SurahMeta, 0, len(payload.Data))
	for _, s := range payload.Data {
		list = append(list, toSurahMeta(s))
	}
	return list, nil
}

func (c *QuranClient) GetSurah(ctx context.Context, number int) (*domain.Surah, error) {
	var payload struct {
		Data quranSurahDetail `json:"data"`
	}
	url := fmt.Sprintf("%s/surah/%d", c.baseURL, number)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	surah := &domain.Surah{
		SurahMeta: toSurahMeta(payload.Data.quranSurahMeta),
		Verses:    make([]domain.Verse, 0, len(payload.Data.Verses)),
	}
	for _, v := range payload.Data.Verses {
		surah.Verses = append(surah.Verses, domain.Verse{
			Number:          v.Number.InSurah,
			Arabic:          v.Text.Arab,
			Transliteration: v.Text.Transliteration.En,
			Translation:     v.Translation.ID,
			AudioURL:        v.Audio.Primary,
		})
	}
	return surah, nil
}

func (c *QuranClient) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrContentGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrSurahNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrContentGateway, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

func toSurahMeta(s quranSurahMeta) domain.SurahMeta {
	return domain.SurahMeta{
		Number:          s.Number,
		Name:            s.Name.Short,
		Transliteration: s.Name.Transliteration.ID,
		Translation:     s.Name.Translation.ID,
		Revelation:      s.Revelation.ID,
		TotalVerses:     s.NumberOfVerses,
	}
}
