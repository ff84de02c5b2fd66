package main

import "time"

type Config struct {
	BotToken            string        `env:"BOT_TOKEN,required=true"`
	ChatID              int64         `env:"CHAT_ID,required=true"`
	BotName             string        `env:"BOT_NAME,default=brewbot"`
	BeverageName        string        `env:"BEVERAGE_NAME,default=tea"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	BrewTimeout         int           `env:"BREW_TIMEOUT_SECONDS,default=60"`
	TickInterval        time.Duration `env:"TICK_INTERVAL,default=1s"`
	GuestLimit          *int          `env:"GUEST_LIMIT"`
	RankWindow          time.Duration `env:"RANK_WINDOW,default=720h"`
	RankRefreshInterval time.Duration `env:"RANK_REFRESH_INTERVAL,default=1h"`
	HealthInterval      time.Duration `env:"HEALTH_INTERVAL,default=5m"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	LogLevel            string        `env:"LOG_LEVEL,default=info"`
}
