package main

import (
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/levanduc/vicore/internal/engine"
	"github.com/levanduc/vicore/internal/ffi"
)

const (
	serviceName = "com.github.vicore"
	objectPath  = "/Engine"

	modShift   = 1 << 0
	modControl = 1 << 2
	modMod1    = 1 << 3
)

// InputEngine is the D-Bus object that receives key events from an input
// method frontend (e.g. Fcitx5).
type InputEngine struct{}

// ProcessKey handles one key event. keysym is the X11 keysym, modifiers is
// the Shift/Ctrl/Alt bitmask. It returns whether the key was consumed, the
// text to commit to the host document, and the current preedit string.
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	caps := modifiers&modShift != 0
	ctrl := modifiers&modControl != 0

	op := ffi.Process(uint16(keysym), caps, ctrl)

	log.Debug().
		Str("key", describeKey(keysym, modifiers)).
		Uint8("action", uint8(op.Action)).
		Int("insert_len", len(op.Insert)).
		Msg("processed key event")

	if op.Action == engine.ActionNone {
		return false, "", ffi.Preedit(), nil
	}
	return true, string(op.Insert), ffi.Preedit(), nil
}

// Reset discards the in-progress syllable.
func (e *InputEngine) Reset() *dbus.Error {
	ffi.Clear()
	log.Info().Msg("engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	ffi.SetEnabled(enabled)
	log.Info().Bool("enabled", enabled).Msg("engine enabled changed")
	return nil
}

// SetMethod switches between Telex (vni=false) and VNI (vni=true).
func (e *InputEngine) SetMethod(vni bool) *dbus.Error {
	ffi.SetMethod(vni)
	log.Info().Bool("vni", vni).Msg("input method changed")
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return ffi.Preedit(), nil
}

func describeKey(keysym uint32, modifiers uint32) string {
	var mods strings.Builder
	if modifiers&modShift != 0 {
		mods.WriteString("Shift+")
	}
	if modifiers&modControl != 0 {
		mods.WriteString("Ctrl+")
	}
	if modifiers&modMod1 != 0 {
		mods.WriteString("Alt+")
	}
	if r, ok := engine.KeycodeToLetter(engine.Keycode(keysym), false); ok {
		return mods.String() + strconv.QuoteRune(r)
	}
	return mods.String() + "0x" + strconv.FormatUint(uint64(keysym), 16)
}

func loadConfig() (vni bool, modern bool) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	level := strings.ToLower(os.Getenv("VICORE_LOG_LEVEL"))
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	vni = strings.EqualFold(os.Getenv("VICORE_METHOD"), "vni")
	modern = true
	if v := os.Getenv("VICORE_MODERN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			modern = b
		}
	}
	return vni, modern
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})

	vni, modern := loadConfig()

	ffi.Init()
	defer ffi.Release()
	ffi.SetMethod(vni)
	ffi.SetModern(modern)

	conn, err := dbus.SessionBus()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to session bus")
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to request bus name")
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		log.Fatal().Msg("bus name already taken - another instance may be running")
	}

	inputEngine := &InputEngine{}
	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		log.Fatal().Err(err).Msg("failed to export D-Bus object")
	}

	log.Info().
		Str("service", serviceName).
		Str("object_path", objectPath).
		Bool("vni", vni).
		Bool("modern", modern).
		Msg("vicore daemon running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("shutting down")
}
