package style

// Clone deep-copies a document. Nested maps and slices are copied;
// scalars are shared.
func Clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Merge deep-copies base and recursively applies override onto the copy.
// When both sides hold maps the merge recurses; everything else (scalars,
// sequences, type mismatches) replaces the base value wholesale.
func Merge(base, override Document) Document {
	out := Clone(base)
	mergeInto(out, override)
	return out
}

func mergeInto(base, override Document) {
	for key, value := range override {
		existing, ok := base[key]
		baseMap, baseIsMap := existing.(map[string]any)
		overrideMap, overrideIsMap := value.(map[string]any)
		if ok && baseIsMap && overrideIsMap {
			mergeInto(baseMap, overrideMap)
			continue
		}
		base[key] = cloneValue(value)
	}
}
