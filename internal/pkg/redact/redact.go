// redact — помощники для безопасного логирования чувствительных значений.
// Сырые токены и секреты в логи не попадают никогда; дайджесты
// усечённо — достаточно для корреляции, бесполезно для предъявления.
package redact

// Token — плейсхолдер вместо любого токена (access/refresh).
func Token() string { return "[REDACTED_TOKEN]" }

// Secret — плейсхолдер вместо ключевого материала.
func Secret() string { return "[REDACTED_SECRET]" }

// Digest усекает дайджест до короткого префикса для корреляции в логах.
func Digest(d string) string {
	const keep = 8

	if len(d) <= keep {
		return d
	}

	return d[:keep] + "..."
}
