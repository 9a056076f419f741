package util

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/codec"
	"github.com/espeer/zep-kvs/lib/kvs/scope"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the store selection flags shared by all kv commands.
func SetupStoreFlags(cmd *cobra.Command) {
	key := "scope"
	cmd.PersistentFlags().String(key, "user", WrapString("The storage scope to operate on (ephemeral, user, machine)"))

	key = "namespace"
	cmd.PersistentFlags().String(key, "", WrapString("The vendor or project namespace the data belongs to"))

	key = "app"
	cmd.PersistentFlags().String(key, "", WrapString("The application name the data belongs to"))

	key = "type"
	cmd.PersistentFlags().String(key, "string", WrapString("The value type for set/get (string, bytes, bool, char, i8-i64, u8-u64, f32, f64)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("zep_kvs")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetIdentity reads the application identity from viper
func GetIdentity() (kvs.Identity, error) {
	id := kvs.Identity{
		Namespace:   viper.GetString("namespace"),
		Application: viper.GetString("app"),
	}
	if err := id.Validate(); err != nil {
		return kvs.Identity{}, fmt.Errorf("set --namespace and --app (or ZEP_KVS_NAMESPACE / ZEP_KVS_APP): %w", err)
	}
	return id, nil
}

// GetScope resolves the configured scope name
func GetScope() (scope.IScope, error) {
	return scope.Parse(viper.GetString("scope"))
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// --------------------------------------------------------------------------
// Value Conversion
// --------------------------------------------------------------------------

// EncodeValue converts a command-line argument into the stored byte encoding
// of the configured value type.
func EncodeValue(typeName, text string) ([]byte, error) {
	switch typeName {
	case "string":
		return codec.String.Encode(text)
	case "bytes":
		data, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("bytes values must be hex-encoded: %w", err)
		}
		return codec.Bytes.Encode(data)
	case "bool":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, err
		}
		return codec.Bool.Encode(v)
	case "char":
		runes := []rune(text)
		if len(runes) != 1 {
			return nil, fmt.Errorf("char values must be exactly one character, got %q", text)
		}
		return codec.Rune.Encode(runes[0])
	case "i8", "i16", "i32", "i64":
		v, err := strconv.ParseInt(text, 10, intBits(typeName))
		if err != nil {
			return nil, err
		}
		switch typeName {
		case "i8":
			return codec.Int8.Encode(int8(v))
		case "i16":
			return codec.Int16.Encode(int16(v))
		case "i32":
			return codec.Int32.Encode(int32(v))
		default:
			return codec.Int64.Encode(v)
		}
	case "u8", "u16", "u32", "u64":
		v, err := strconv.ParseUint(text, 10, intBits(typeName))
		if err != nil {
			return nil, err
		}
		switch typeName {
		case "u8":
			return codec.Uint8.Encode(uint8(v))
		case "u16":
			return codec.Uint16.Encode(uint16(v))
		case "u32":
			return codec.Uint32.Encode(uint32(v))
		default:
			return codec.Uint64.Encode(v)
		}
	case "f32":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return codec.Float32.Encode(float32(v))
	case "f64":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return codec.Float64.Encode(v)
	default:
		return nil, fmt.Errorf("unknown value type %q", typeName)
	}
}

// FormatValue decodes stored bytes as the configured value type and renders
// them for terminal output.
func FormatValue(typeName string, data []byte) (string, error) {
	switch typeName {
	case "string":
		v, err := codec.String.Decode(data)
		return v, err
	case "bytes":
		v, err := codec.Bytes.Decode(data)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(v), nil
	case "bool":
		v, err := codec.Bool.Decode(data)
		return fmt.Sprintf("%t", v), err
	case "char":
		v, err := codec.Rune.Decode(data)
		return string(v), err
	case "i8":
		v, err := codec.Int8.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "i16":
		v, err := codec.Int16.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "i32":
		v, err := codec.Int32.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "i64":
		v, err := codec.Int64.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "u8":
		v, err := codec.Uint8.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "u16":
		v, err := codec.Uint16.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "u32":
		v, err := codec.Uint32.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "u64":
		v, err := codec.Uint64.Decode(data)
		return fmt.Sprintf("%d", v), err
	case "f32":
		v, err := codec.Float32.Decode(data)
		return fmt.Sprintf("%g", v), err
	case "f64":
		v, err := codec.Float64.Decode(data)
		return fmt.Sprintf("%g", v), err
	default:
		return "", fmt.Errorf("unknown value type %q", typeName)
	}
}

func intBits(typeName string) int {
	switch typeName[1:] {
	case "8":
		return 8
	case "16":
		return 16
	case "32":
		return 32
	default:
		return 64
	}
}

// GetValueType retrieves the configured value type name
func GetValueType() string {
	return viper.GetString("type")
}
