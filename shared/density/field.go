// Package density define o contrato de amostragem do campo de densidade
// consumido pelos meshers. Densidade negativa = sólido, positiva = vazio;
// a isosuperfície é o conjunto de nível zero.
package density

import "errors"

// ErrNilField indica geração sem um campo de densidade configurado.
// Sem campo não existe isosuperfície matematicamente definida, então a
// geração falha explicitamente em vez de inventar uma superfície.
var ErrNilField = errors.New("density: campo de densidade ausente")

// Field é o contrato de amostragem do campo de densidade.
type Field interface {
	// Sample retorna a densidade com sinal na posição do mundo.
	Sample(x, y, z float32) float32

	// GradientStep retorna o passo de diferença finita para estimar o
	// gradiente, dado o tamanho da célula. Retornar <= 0 delega ao
	// passo padrão (DefaultGradientStep).
	GradientStep(cellSize float32) float32
}

// DefaultGradientStep é o passo padrão de diferença central: metade do
// tamanho da célula.
func DefaultGradientStep(cellSize float32) float32 {
	return cellSize * 0.5
}

// FieldFunc adapta uma função pura para o contrato Field, usando o passo
// de gradiente padrão.
type FieldFunc func(x, y, z float32) float32

// Sample implementa Field.
func (f FieldFunc) Sample(x, y, z float32) float32 {
	return f(x, y, z)
}

// GradientStep implementa Field delegando ao passo padrão.
func (f FieldFunc) GradientStep(cellSize float32) float32 {
	return 0
}
