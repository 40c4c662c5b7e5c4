package msg

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const DefaultMessagesFilePath = "configs/messages.yml"

var (
	mu       sync.RWMutex
	messages = map[string]string{}
)

// FilePath returns the messages file location, honouring MESSAGES_FILE_PATH.
func FilePath() string {
	if value, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok && value != "" {
		return value
	}
	return DefaultMessagesFilePath
}

// Init loads the message catalogue from the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read messages %s: %w", filepath, err)
	}

	loaded := make(map[string]string)
	parseMessageMap("", v.AllSettings(), loaded)

	mu.Lock()
	messages = loaded
	mu.Unlock()
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...interface{}) string {
	mu.RLock()
	msg, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		var argStr string

		if isPrimitive(arg) {
			argStr = primitiveToString(arg)
		} else if e, ok := arg.(error); ok {
			argStr = e.Error()
		} else if s, ok := arg.(fmt.Stringer); ok {
			argStr = s.String()
		} else {
			jsonBytes, err := json.Marshal(arg)
			if err != nil {
				argStr = fmt.Sprintf("%v", arg)
			} else {
				argStr = string(jsonBytes)
			}
		}

		msg = strings.ReplaceAll(msg, placeholder, argStr)
	}

	return msg
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	if value == nil {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
