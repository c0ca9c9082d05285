package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/stream"
	"golang.org/x/sync/errgroup"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Api        *api.Api
}

func newApp(config stream.Config) (*app, error) {
	a := new(app)
	a.Config = config

	logger := log.New(os.Stdout, "", log.LstdFlags)
	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))

	controller, err := stream.NewController(config, rng, logger)
	if err != nil {
		return nil, err
	}
	a.Controller = controller

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(config.Mqtt.ClientID).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	publisher := stream.NewMqttPublisher(a.Client, config.Mqtt.Qos, time.Second)
	a.Streamer = stream.NewStreamer(controller, publisher, config.Mqtt.Topics.Stream, config.Stream.FrameRate, logger)
	a.Api = api.NewApi(a.Streamer)

	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	defer a.Client.Disconnect(250)

	if a.Config.Autoplay != "" {
		if err := a.Controller.Play(a.Config.Autoplay); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Streamer.Run(gctx) })
	g.Go(func() error { return a.Api.Serve(gctx, a.Config.Api.Listen) })

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runStreamer(configPath string) error {
	config, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log.Printf("Config: %d pixels at %.0f fps, %d presets", config.Stream.Pixels, config.Stream.FrameRate, len(config.Presets))

	a, err := newApp(config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
