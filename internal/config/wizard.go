package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to restohub! Let's configure your catalogue.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. API endpoint.
	apiPrompt := promptui.Prompt{
		Label:   "Restaurant API base URL",
		Default: cfg.APIBaseURL,
		Validate: func(s string) error {
			return validateHTTPURL("api_base_url", s, true)
		},
	}
	apiURL, err := apiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if apiURL != cfg.APIBaseURL {
		cfg.APIBaseURL = apiURL
		cfg.ImageBaseURL = apiURL + "/images"
	}

	// 2. Image size.
	sizePrompt := promptui.Select{
		Label: "Select image size for restaurant cards",
		Items: []string{"small", "medium", "large"},
	}
	_, size, err := sizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("image size selection: %w", err)
	}
	cfg.ImageSize = size

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory for the offline cache and favorites",
		Default: cfg.DataDir,
	}
	cfg.DataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for restohub server",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
