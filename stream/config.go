package stream

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	defaultPixels    = 500
	defaultFrameRate = 30.0
	defaultTopic     = "home/xmastree/stream"
	defaultClientID  = "ledtween"
	defaultListen    = ":3000"
)

// Config is the YAML configuration of the LED streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		FrameRate  float64 `yaml:"frameRate"`
		Pixels     int     `yaml:"pixels"`
		Background string  `yaml:"background"`
		Twinkle    struct {
			Particles int     `yaml:"particles"`
			Colour    string  `yaml:"colour"`
			MinSecs   float64 `yaml:"minSecs"`
			MaxSecs   float64 `yaml:"maxSecs"`
		} `yaml:"twinkle"`
	} `yaml:"stream"`
	Api struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
	Autoplay string   `yaml:"autoplay"`
	Presets  []Preset `yaml:"presets"`
}

// LoadConfig reads, defaults and validates the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = defaultClientID
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = defaultTopic
	}
	if c.Stream.FrameRate == 0 {
		c.Stream.FrameRate = defaultFrameRate
	}
	if c.Stream.Pixels == 0 {
		c.Stream.Pixels = defaultPixels
	}
	if c.Stream.Background == "" {
		c.Stream.Background = "#000005"
	}
	if c.Stream.Twinkle.Colour == "" {
		c.Stream.Twinkle.Colour = "#808080"
	}
	if c.Stream.Twinkle.MinSecs == 0 {
		c.Stream.Twinkle.MinSecs = 0.5
	}
	if c.Stream.Twinkle.MaxSecs == 0 {
		c.Stream.Twinkle.MaxSecs = 2
	}
	if c.Api.Listen == "" {
		c.Api.Listen = defaultListen
	}
}

// Validate checks the config for values the streamer cannot run with.
func (c *Config) Validate() error {
	if c.Mqtt.Qos > 2 {
		return fmt.Errorf("%w: mqtt.qos %d", ErrInvalidConfig, c.Mqtt.Qos)
	}
	if c.Stream.FrameRate <= 0 {
		return fmt.Errorf("%w: stream.frameRate %v", ErrInvalidConfig, c.Stream.FrameRate)
	}
	if c.Stream.Pixels <= 0 || c.Stream.Pixels > 0xffff {
		return fmt.Errorf("%w: stream.pixels %d", ErrInvalidConfig, c.Stream.Pixels)
	}
	if _, err := colorful.Hex(c.Stream.Background); err != nil {
		return fmt.Errorf("%w: stream.background %q", ErrInvalidConfig, c.Stream.Background)
	}
	tw := c.Stream.Twinkle
	if tw.Particles < 0 || tw.MinSecs <= 0 || tw.MaxSecs < tw.MinSecs {
		return fmt.Errorf("%w: stream.twinkle", ErrInvalidConfig)
	}
	if _, err := colorful.Hex(tw.Colour); err != nil {
		return fmt.Errorf("%w: stream.twinkle.colour %q", ErrInvalidConfig, tw.Colour)
	}

	names := make(map[string]bool, len(c.Presets))
	for i := range c.Presets {
		p := &c.Presets[i]
		if err := p.validate(c.Stream.Pixels); err != nil {
			return fmt.Errorf("%w: preset %d: %w", ErrInvalidConfig, i, err)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true
	}
	for _, p := range c.Presets {
		if p.Next != "" && !names[p.Next] {
			return fmt.Errorf("%w: preset %q: unknown next %q", ErrInvalidConfig, p.Name, p.Next)
		}
	}
	if c.Autoplay != "" && !names[c.Autoplay] {
		return fmt.Errorf("%w: unknown autoplay preset %q", ErrInvalidConfig, c.Autoplay)
	}
	return nil
}
