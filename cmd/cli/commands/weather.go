package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybreak/pkg/clients/weatherclient"
)

const forecastWindow = 48 * time.Hour

// WeatherCmd creates the weather command: print the hourly forecast for the
// configured coordinates over the next two days.
func WeatherCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Show the hourly forecast for the next 48 hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWeather(app)
		},
	}
}

func printWeather(app *AppContext) error {
	client := weatherclient.NewClient()
	periods, err := client.HourlyForecast(app.Ctx, app.Cfg.Latitude, app.Cfg.Longitude, forecastWindow)
	if err != nil {
		return fmt.Errorf("failed to fetch forecast: %w", err)
	}
	if len(periods) == 0 {
		fmt.Println("No forecast periods returned.")
		return nil
	}

	var lastDay string
	for _, p := range periods {
		day := p.StartTime.Format("Monday, Jan 2")
		if day != lastDay {
			fmt.Printf("\n%s\n", day)
			lastDay = day
		}
		fmt.Printf("  %s  %3d°%s  %s\n",
			p.StartTime.Format("15:04"), p.Temperature, p.TemperatureUnit, p.ShortForecast)
	}
	return nil
}
