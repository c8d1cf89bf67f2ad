package config

type Storage struct {
	LedgerPath    string `env:"LEDGER_PATH" envDefault:"data/inventory.csv"`
	TemplatesPath string `env:"TEMPLATES_PATH" envDefault:"data/templates.csv"`
}
