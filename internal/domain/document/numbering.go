// Package document contiene las reglas puras del motor de documentos comerciales:
// numeración correlativa, recálculo de totales y validación de líneas.
// No accede a la base de datos; los casos de uso le pasan los datos ya cargados.
package document

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

// DefaultNumberWindow cantidad de números recientes que se inspeccionan para sugerir el siguiente.
const DefaultNumberWindow = 10

// NextNumber sugiere el siguiente número de la familia a partir de una ventana de números recientes.
// Formato: PREFIJO-AÑO-NNN (ej. OC-2024-003). Los números que no siguen el patrón de la familia
// para el año dado se ignoran; si ninguno coincide la secuencia arranca en 1.
// El resultado es un candidato: la unicidad real se garantiza al crear el documento.
func NextNumber(cfg entity.FamilyConfig, recent []string, year int) string {
	pattern := numberPattern(cfg.NumberPrefix, year)
	maxSeq := 0
	for _, n := range recent {
		m := pattern.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return FormatNumber(cfg, year, maxSeq+1)
}

// FormatNumber arma el número con el prefijo y el ancho de la familia.
func FormatNumber(cfg entity.FamilyConfig, year, seq int) string {
	width := cfg.NumberWidth
	if width <= 0 {
		width = 3
	}
	return fmt.Sprintf("%s-%d-%0*d", cfg.NumberPrefix, year, width, seq)
}

func numberPattern(prefix string, year int) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-` + strconv.Itoa(year) + `-(\d+)$`)
}
