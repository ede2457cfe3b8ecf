package main

import (
	"fmt"

	"github.com/RobertWHurst/rtcrelay"
	jsoncodec "github.com/RobertWHurst/rtcrelay/codec/json"
	msgpackcodec "github.com/RobertWHurst/rtcrelay/codec/msgpack"
	protobufcodec "github.com/RobertWHurst/rtcrelay/codec/protobuf"
	"github.com/spf13/viper"
)

type config struct {
	Codec         rtcrelay.Codec
	NatsURL       string
	SubjectPrefix string
	Listen        string
	Origins       []string
	LogLevel      string
}

func loadConfig(v *viper.Viper) (*config, error) {
	codec, err := codecByName(v.GetString("codec"))
	if err != nil {
		return nil, err
	}
	return &config{
		Codec:         codec,
		NatsURL:       v.GetString("nats-url"),
		SubjectPrefix: v.GetString("subject-prefix"),
		Listen:        v.GetString("listen"),
		Origins:       v.GetStringSlice("origins"),
		LogLevel:      v.GetString("log-level"),
	}, nil
}

func codecByName(name string) (rtcrelay.Codec, error) {
	switch name {
	case "", "json":
		return jsoncodec.New(), nil
	case "msgpack":
		return msgpackcodec.New(), nil
	case "protobuf":
		return protobufcodec.New(), nil
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}
