// seed_roles genera el script SQL con los permisos de fábrica de los roles incluidos.
//
// Uso: go run ./cmd/seed_roles [rol adicional ...]
// Los roles adicionales se normalizan ("Recepción" -> RECEPCION) y se siembran sin permisos.
// Escribe: internal/infrastructure/postgres/migrations/004_seed_role_permissions.sql
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Restaurante-api/internal/domain/permission"
)

// roleNamespace fija los UUID generados para que el script sea reproducible.
var roleNamespace = uuid.MustParse("6f1c2a7e-3b9d-4c55-9a0e-2f7d8b1e4c30")

func main() {
	sets := permission.DefaultSets()
	for _, arg := range os.Args[1:] {
		role := permission.NormalizeRole(arg)
		if role == "" {
			continue
		}
		if _, ok := sets[role]; !ok {
			sets[role] = permission.Set{}.Complete()
		}
	}

	roles := make([]string, 0, len(sets))
	for r := range sets {
		roles = append(roles, r)
	}
	sort.Strings(roles)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "004_seed_role_permissions.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Permisos de fábrica por rol\n")
	out.WriteString("-- Generado por cmd/seed_roles; los roles existentes no se modifican\n\n")
	out.WriteString("INSERT INTO role_permissions (id, role, permissions, built_in) VALUES\n")
	for i, role := range roles {
		raw, err := json.Marshal(sets[role])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Codificar permisos de %s: %v\n", role, err)
			os.Exit(1)
		}
		id := uuid.NewSHA1(roleNamespace, []byte(role))
		sep := ","
		if i == len(roles)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s'::jsonb, TRUE)%s\n", id, escapeSQL(role), escapeSQL(string(raw)), sep)
	}
	out.WriteString("ON CONFLICT (role) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d roles\n", outPath, len(roles))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
