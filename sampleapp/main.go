// Command sampleapp demonstrates the pnglite API end to end: it builds a
// PNG stream in memory, hides a message in it, lists the resulting chunks,
// reads the message back, and strips it again. Settings come from
// sample.toml next to the binary when present.
package main

import (
	"bytes"
	"os"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/pnglite"
	"github.com/anirudhraja/pnglite/png"
	"github.com/anirudhraja/pnglite/wire"
)

const configPath = "sample.toml"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatal().Err(err).Str("path", configPath).Msg("load config")
		}
		cfg = defaultConfig()
		logger.Info().Str("path", configPath).Msg("no config file, using defaults")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("parse log level")
	}
	logger = logger.Level(level)

	image := baselineImage(logger)
	logger.Info().Int("bytes", len(image)).Msg("built baseline stream")

	image, err = pnglite.Embed(image, cfg.Tag, []byte(cfg.Message))
	if err != nil {
		logger.Fatal().Err(err).Str("tag", cfg.Tag).Msg("embed")
	}
	logger.Info().Str("tag", cfg.Tag).Int("bytes", len(image)).Msg("embedded message")

	infos, err := pnglite.ListChunks(image)
	if err != nil {
		logger.Fatal().Err(err).Msg("list chunks")
	}
	for _, info := range infos {
		logger.Info().
			Str("type", info.Type).
			Uint32("length", info.Length).
			Uint32("crc", info.CRC).
			Bool("critical", info.Critical).
			Bool("safe_to_copy", info.SafeToCopy).
			Msg("chunk")
	}

	message, err := pnglite.Extract(image, cfg.Tag)
	if err != nil {
		logger.Fatal().Err(err).Str("tag", cfg.Tag).Msg("extract")
	}
	logger.Info().Str("message", message).Msg("recovered message")

	image, err = pnglite.Remove(image, cfg.Tag)
	if err != nil {
		logger.Fatal().Err(err).Str("tag", cfg.Tag).Msg("remove")
	}
	logger.Info().Int("bytes", len(image)).Msg("stripped message")
}

// baselineImage assembles a minimal chunk stream to hide messages in.
func baselineImage(logger zerolog.Logger) []byte {
	var chunks []*wire.Chunk
	for _, c := range []struct {
		tag     string
		payload string
	}{
		{tag: "FrSt", payload: "I am the first chunk"},
		{tag: "miDl", payload: "I am another chunk"},
		{tag: "IEND", payload: ""},
	} {
		chunkType, err := wire.ChunkTypeFromString(c.tag)
		if err != nil {
			logger.Fatal().Err(err).Str("tag", c.tag).Msg("build baseline chunk")
		}
		chunks = append(chunks, wire.NewChunk(chunkType, []byte(c.payload)))
	}

	stream := png.FromChunks(chunks).Bytes()
	if !bytes.HasPrefix(stream, png.Signature[:]) {
		logger.Fatal().Msg("baseline stream missing signature")
	}
	return stream
}
