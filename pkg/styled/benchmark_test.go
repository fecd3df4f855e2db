package styled_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/styledid/pkg/parser/treesitter"
	"github.com/yaklabco/styledid/pkg/styled"
)

// benchSource builds a module with n components spread over every
// supported call shape.
func benchSource(n int) []byte {
	var sb strings.Builder
	sb.WriteString("import styled, { css } from 'styled-components';\n\n")
	for i := range n {
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, "const Box%d = styled.div`padding: %dpx;`;\n", i, i)
		case 1:
			fmt.Fprintf(&sb, "const Link%d = styled(Box%d).attrs({ role: 'link' })`color: red;`;\n", i, i-1)
		default:
			fmt.Fprintf(&sb, "export const Card%d = styled('section')({ margin: %d });\n", i, i)
		}
	}
	sb.WriteString("\nexport default function App() {\n  return null;\n}\n")
	return []byte(sb.String())
}

// Benchmark parsing alone.
func BenchmarkParse(b *testing.B) {
	src := benchSource(90)
	parser := treesitter.New()
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if _, _, err := parser.Parse(ctx, "/repo/src/App.jsx", src); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark the full plugin transform (pre-check, parse, rewrite).
func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{3, 30, 300} {
		b.Run(fmt.Sprintf("components=%d", n), func(b *testing.B) {
			src := benchSource(n)
			cfg := styled.DefaultPluginConfig()
			cfg.Hasher = fixedHasher()
			plugin, err := styled.NewPlugin(cfg)
			if err != nil {
				b.Fatal(err)
			}
			ctx := context.Background()

			b.SetBytes(int64(len(src)))
			b.ResetTimer()
			for range b.N {
				result, err := plugin.Transform(ctx, "/repo/src/App.jsx", src)
				if err != nil || len(result.Sites) != n {
					b.Fatalf("transform: %v", err)
				}
			}
		})
	}
}

// Benchmark the pre-check path for files that never mention the factory.
func BenchmarkTransformUnrelated(b *testing.B) {
	src := []byte(strings.Repeat("export const value = compute(1, 2, 3);\n", 500))
	plugin, err := styled.NewPlugin(styled.DefaultPluginConfig())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if _, err := plugin.Transform(ctx, "/repo/src/util.js", src); err != nil {
			b.Fatal(err)
		}
	}
}
