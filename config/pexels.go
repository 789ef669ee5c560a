package config

import "os"

const (
	DefaultPexelsApiUrl    = "https://api.pexels.com/videos/search"
	PexelsOrientation      = "landscape"
	PexelsPreferredQuality = "hd"
	DownloadChunkSize      = 8192
)

type PexelsConfig struct {
	ApiUrl           string
	ApiKey           string
	PerPage          int
	Orientation      string
	PreferredQuality string
	ChunkSize        int
}

// GetPexelsConfig builds the footage client settings. The key only ever comes
// from the interactive prompt.
func GetPexelsConfig(apiKey string) *PexelsConfig {
	apiUrl := os.Getenv("PEXELS_API_URL")
	if apiUrl == "" {
		apiUrl = DefaultPexelsApiUrl
	}

	return &PexelsConfig{
		ApiUrl:           apiUrl,
		ApiKey:           apiKey,
		PerPage:          DefaultSearchPerQuery,
		Orientation:      PexelsOrientation,
		PreferredQuality: PexelsPreferredQuality,
		ChunkSize:        DownloadChunkSize,
	}
}

func (c *PexelsConfig) Enabled() bool {
	return c != nil && c.ApiKey != ""
}
