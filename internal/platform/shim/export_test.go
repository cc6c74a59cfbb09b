package shim

func reset() {
	mu.Lock()
	defer mu.Unlock()

	capabilities = map[string]any{}
}
