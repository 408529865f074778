package density

import "github.com/chewxy/math32"

// Ruído de valor 3D determinístico, sem costuras entre chunks porque a
// amostragem usa coordenadas de mundo (nunca um RNG caminhante).

// fade é a suavização 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// hash3 é um hash inteiro estilo SplitMix64, estável entre execuções
// para as mesmas entradas.
func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x) + (uint64(y) << 1) + (uint64(z) << 2) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// latticeValue mapeia um ponto da grade para [0,1].
func latticeValue(x, y, z, seed int64) float32 {
	h := hash3(x, y, z, seed)
	return float32(h&0xFFFFFFFF) / float32(0xFFFFFFFF)
}

// valueNoise3D interpola os oito valores da célula da grade que contém
// o ponto. Resultado em [0,1].
func valueNoise3D(x, y, z float32, seed int64) float32 {
	x0 := math32.Floor(x)
	y0 := math32.Floor(y)
	z0 := math32.Floor(z)

	ix := int64(x0)
	iy := int64(y0)
	iz := int64(z0)

	tx := fade(x - x0)
	ty := fade(y - y0)
	tz := fade(z - z0)

	c000 := latticeValue(ix, iy, iz, seed)
	c100 := latticeValue(ix+1, iy, iz, seed)
	c010 := latticeValue(ix, iy+1, iz, seed)
	c110 := latticeValue(ix+1, iy+1, iz, seed)
	c001 := latticeValue(ix, iy, iz+1, seed)
	c101 := latticeValue(ix+1, iy, iz+1, seed)
	c011 := latticeValue(ix, iy+1, iz+1, seed)
	c111 := latticeValue(ix+1, iy+1, iz+1, seed)

	x00 := lerp(c000, c100, tx)
	x10 := lerp(c010, c110, tx)
	x01 := lerp(c001, c101, tx)
	x11 := lerp(c011, c111, tx)

	y0v := lerp(x00, x10, ty)
	y1v := lerp(x01, x11, ty)

	return lerp(y0v, y1v, tz)
}

// octaveNoise3D soma oitavas de valueNoise3D. Resultado em [0,1].
func octaveNoise3D(x, y, z float32, seed int64, octaves int, persistence, lacunarity float32) float32 {
	if octaves < 1 {
		octaves = 1
	}

	var total, amplitude, maxValue float32
	amplitude = 1.0
	frequency := float32(1.0)

	for i := 0; i < octaves; i++ {
		total += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i)*1013) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxValue
}
