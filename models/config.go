package models

type Config struct {
	Debug bool `envconfig:"GENOBROWSE_DEBUG"`

	SemVer         string `envconfig:"GENOBROWSE_SEMVER" default:"0.1.0"`
	ServiceContact string `envconfig:"GENOBROWSE_SERVICE_CONTACT" default:"mailto:support@genobrowse.org"`

	Api struct {
		Port          string `envconfig:"GENOBROWSE_API_INTERNAL_PORT" default:"5000"`
		ManifestPath  string `envconfig:"GENOBROWSE_API_MANIFEST_PATH" default:"data/datasets.yml"`
		HistogramBins int    `envconfig:"GENOBROWSE_API_HISTOGRAM_BINS" default:"20"`
	}
}
