package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// configTagName 返回字段的 json key，"-" 或未设置时为空。
func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType
}

// collectConfigKeys 收集叶子 key（如 log.level）及其字段类型。
func collectConfigKeys(typ reflect.Type) map[string]reflect.Type {
	keys := make(map[string]reflect.Type)
	walkFields(typ, "", func(key string, field reflect.StructField) {
		keys[key] = field.Type
	})

	return keys
}

// walkFields 递归遍历带 json tag 的导出字段，fn 只接收叶子字段。
func walkFields(typ reflect.Type, prefix string, fn func(key string, field reflect.StructField)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || !field.IsExported() {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		if isStructType(field.Type) {
			walkFields(field.Type, key, fn)
			continue
		}
		fn(key, field)
	}
}

// structToMap 将默认配置转为嵌套 map，作为合并的底层。
func structToMap(cfg any) map[string]any {
	out := make(map[string]any)
	val := reflect.Indirect(reflect.ValueOf(cfg))
	if val.Kind() != reflect.Struct {
		return out
	}

	walkFields(val.Type(), "", func(key string, field reflect.StructField) {
		fv, ok := fieldByPath(val, key)
		if ok {
			setByPath(out, key, fv.Interface())
		}
	})

	return out
}

func fieldByPath(val reflect.Value, path string) (reflect.Value, bool) {
	for _, part := range strings.Split(path, ".") {
		if val.Kind() == reflect.Pointer {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}

		found := false
		for i := range val.NumField() {
			if configTagName(val.Type().Field(i)) == part {
				val = val.Field(i)
				found = true

				break
			}
		}
		if !found {
			return reflect.Value{}, false
		}
	}

	return val, true
}

// generateEnvBindings 根据配置 key 生成 环境变量名 → key 映射。
func generateEnvBindings(prefix string, keys map[string]reflect.Type) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch root := normalizeMapKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, errors.New("config root must be object")
	}
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
