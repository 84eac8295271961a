package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// CalendarConfig controls the defaults generated for a company that has
// no stored business days or business hours yet.
type CalendarConfig struct {
	DefaultShiftName string `mapstructure:"defaultShiftName"`
	DefaultStartTime string `mapstructure:"defaultStartTime"`
	DefaultEndTime   string `mapstructure:"defaultEndTime"`
	WeekendShiftName string `mapstructure:"weekendShiftName"`
	WeekendRemark    string `mapstructure:"weekendRemark"`
}

func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		DefaultShiftName: "Standard",
		DefaultStartTime: "09:00",
		DefaultEndTime:   "17:00",
		WeekendShiftName: "Closed",
		WeekendRemark:    "Weekend",
	}
}

type CalendarConfigHolder struct {
	current atomic.Value // holds CalendarConfig
}

func NewCalendarConfigHolder() (*CalendarConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("calendar")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/bizconf")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BIZCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultCalendarConfig()
	v.SetDefault("calendar.defaultShiftName", defaults.DefaultShiftName)
	v.SetDefault("calendar.defaultStartTime", defaults.DefaultStartTime)
	v.SetDefault("calendar.defaultEndTime", defaults.DefaultEndTime)
	v.SetDefault("calendar.weekendShiftName", defaults.WeekendShiftName)
	v.SetDefault("calendar.weekendRemark", defaults.WeekendRemark)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg CalendarConfig
	if err := v.UnmarshalKey("calendar", &cfg); err != nil {
		return nil, err
	}
	if err := validateCalendarConfig(cfg); err != nil {
		return nil, err
	}

	holder := &CalendarConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated CalendarConfig
		if err := v.UnmarshalKey("calendar", &updated); err != nil {
			log.Printf("[calendar-config] reload failed: %v", err)
			return
		}
		if err := validateCalendarConfig(updated); err != nil {
			log.Printf("[calendar-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[calendar-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticCalendarConfigHolder wraps a fixed config with no file
// watching. Intended for tests.
func NewStaticCalendarConfigHolder(cfg CalendarConfig) *CalendarConfigHolder {
	holder := &CalendarConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *CalendarConfigHolder) Get() CalendarConfig {
	return h.current.Load().(CalendarConfig)
}

func validateCalendarConfig(cfg CalendarConfig) error {
	if strings.TrimSpace(cfg.DefaultShiftName) == "" {
		return errors.New("calendar.defaultShiftName cannot be empty")
	}
	if strings.TrimSpace(cfg.DefaultStartTime) == "" || strings.TrimSpace(cfg.DefaultEndTime) == "" {
		return errors.New("calendar default shift times cannot be empty")
	}
	if cfg.DefaultStartTime >= cfg.DefaultEndTime {
		return errors.New("calendar.defaultStartTime must be before calendar.defaultEndTime")
	}
	return nil
}
