package menu

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/navigation"
)

// schemaVersion es la versión del sobre con que se persiste la configuración.
const schemaVersion = 1

type envelope struct {
	Version int                    `json:"version"`
	Entries []navigation.MenuEntry `json:"entries"`
}

func encodeEntries(entries []navigation.MenuEntry) ([]byte, error) {
	if entries == nil {
		entries = []navigation.MenuEntry{}
	}
	return json.Marshal(envelope{Version: schemaVersion, Entries: entries})
}

// decodeEntries acepta el sobre versionado y el arreglo plano que se guardaba antes.
func decodeEntries(raw []byte) ([]navigation.MenuEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("configuración vacía")
	}
	var entries []navigation.MenuEntry
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decodificar arreglo: %w", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decodificar sobre: %w", err)
		}
		if env.Version < 1 || env.Version > schemaVersion {
			return nil, fmt.Errorf("versión de configuración no soportada: %d", env.Version)
		}
		entries = env.Entries
	}
	if err := navigation.Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
