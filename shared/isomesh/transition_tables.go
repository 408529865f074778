package isomesh

// Tabelas da célula de transição (512 casos, estêncil de 13 pontos).
// A máscara de 9 bits vem só dos 9 pontos finos (bit i = ponto i
// negativo, ordem row-major da face 3x3). Os 4 pontos grossos reutilizam
// o valor amostrado no canto fino coincidente (9<-0, 10<-2, 11<-6,
// 12<-8), então o sinal deles nunca diverge da máscara. Cada caso
// referencia uma classe canônica de triângulos (bits 0..14) e um flag
// de inversão de winding (bit 15); os vértices são pares empacotados
// de extremos do estêncil (0..12, nibble alto/baixo). As classes foram
// derivadas de uma decomposição conforme do volume da célula em 14
// tetraedros com orientação geométrica verificada (normal do sólido
// para o vazio). Dados imutáveis de processo.

// transitionPointOffsets posiciona os 13 pontos no referencial da face:
// (u, v, w) com u,v em células finas sobre a face e w apontando para
// fora do chunk (0 = plano da face, 1 = camada grossa externa).
var transitionPointOffsets = [13][3]int32{
	{0, 0, 0},
	{1, 0, 0},
	{2, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{2, 1, 0},
	{0, 2, 0},
	{1, 2, 0},
	{2, 2, 0},
	{0, 0, 1},
	{2, 0, 1},
	{0, 2, 1},
	{2, 2, 1},
}

// transitionCellClass: bits 0..14 indexam transitionClassTriangles;
// bit 15 pede inversão do winding de cada triângulo da classe. O
// complemento de uma máscara cai na mesma classe com o flag trocado.
var transitionCellClass = [512]uint16{
	0x0000, 0x0001, 0x0002, 0x0003, 0x0004, 0x0005, 0x0006, 0x0007,
	0x0008, 0x0009, 0x000A, 0x000B, 0x000C, 0x000D, 0x000E, 0x000F,
	0x0010, 0x0011, 0x0012, 0x0013, 0x0014, 0x0015, 0x0016, 0x0017,
	0x0018, 0x0019, 0x001A, 0x001B, 0x001C, 0x001D, 0x001E, 0x001F,
	0x8008, 0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x0026,
	0x0027, 0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E,
	0x002F, 0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036,
	0x0037, 0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E,
	0x003F, 0x0040, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046,
	0x0047, 0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E,
	0x004F, 0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056,
	0x0057, 0x0058, 0x0059, 0x005A, 0x005B, 0x005C, 0x005D, 0x005E,
	0x005F, 0x0060, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066,
	0x0067, 0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E,
	0x006F, 0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076,
	0x0077, 0x0078, 0x0079, 0x007A, 0x007B, 0x007C, 0x007D, 0x007E,
	0x007F, 0x0080, 0x0081, 0x0082, 0x0083, 0x0084, 0x0085, 0x0086,
	0x0087, 0x0088, 0x0089, 0x008A, 0x008B, 0x008C, 0x008D, 0x008E,
	0x008F, 0x0090, 0x0091, 0x0092, 0x0093, 0x0094, 0x0095, 0x0096,
	0x0097, 0x0098, 0x0099, 0x009A, 0x009B, 0x009C, 0x009D, 0x009E,
	0x009F, 0x00A0, 0x00A1, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6,
	0x00A7, 0x00A8, 0x00A9, 0x00AA, 0x00AB, 0x00AC, 0x00AD, 0x00AE,
	0x00AF, 0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6,
	0x00B7, 0x00B8, 0x00B9, 0x00BA, 0x00BB, 0x00BC, 0x00BD, 0x00BE,
	0x8023, 0x00BF, 0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x00C4, 0x00C5,
	0x8025, 0x00C6, 0x00C7, 0x00C8, 0x00C9, 0x00CA, 0x00CB, 0x00CC,
	0x00CD, 0x00CE, 0x00CF, 0x00D0, 0x00D1, 0x00D2, 0x00D3, 0x00D4,
	0x00D5, 0x00D6, 0x00D7, 0x00D8, 0x00D9, 0x00DA, 0x00DB, 0x00DC,
	0x00DD, 0x00DE, 0x00DF, 0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x00E4,
	0x00E5, 0x00E6, 0x00E7, 0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x00EC,
	0x00ED, 0x00EE, 0x00EF, 0x00F0, 0x00F1, 0x00F2, 0x00F3, 0x00F4,
	0x00F5, 0x00F6, 0x00F7, 0x00F8, 0x00F9, 0x00FA, 0x00FB, 0x00FC,
	0x80FC, 0x80FB, 0x80FA, 0x80F9, 0x80F8, 0x80F7, 0x80F6, 0x80F5,
	0x80F4, 0x80F3, 0x80F2, 0x80F1, 0x80F0, 0x80EF, 0x80EE, 0x80ED,
	0x80EC, 0x80EB, 0x80EA, 0x80E9, 0x80E8, 0x80E7, 0x80E6, 0x80E5,
	0x80E4, 0x80E3, 0x80E2, 0x80E1, 0x80E0, 0x80DF, 0x80DE, 0x80DD,
	0x80DC, 0x80DB, 0x80DA, 0x80D9, 0x80D8, 0x80D7, 0x80D6, 0x80D5,
	0x80D4, 0x80D3, 0x80D2, 0x80D1, 0x80D0, 0x80CF, 0x80CE, 0x80CD,
	0x80CC, 0x80CB, 0x80CA, 0x80C9, 0x80C8, 0x80C7, 0x80C6, 0x0025,
	0x80C5, 0x80C4, 0x80C3, 0x80C2, 0x80C1, 0x80C0, 0x80BF, 0x0023,
	0x80BE, 0x80BD, 0x80BC, 0x80BB, 0x80BA, 0x80B9, 0x80B8, 0x80B7,
	0x80B6, 0x80B5, 0x80B4, 0x80B3, 0x80B2, 0x80B1, 0x80B0, 0x80AF,
	0x80AE, 0x80AD, 0x80AC, 0x80AB, 0x80AA, 0x80A9, 0x80A8, 0x80A7,
	0x80A6, 0x80A5, 0x80A4, 0x80A3, 0x80A2, 0x80A1, 0x80A0, 0x809F,
	0x809E, 0x809D, 0x809C, 0x809B, 0x809A, 0x8099, 0x8098, 0x8097,
	0x8096, 0x8095, 0x8094, 0x8093, 0x8092, 0x8091, 0x8090, 0x808F,
	0x808E, 0x808D, 0x808C, 0x808B, 0x808A, 0x8089, 0x8088, 0x8087,
	0x8086, 0x8085, 0x8084, 0x8083, 0x8082, 0x8081, 0x8080, 0x807F,
	0x807E, 0x807D, 0x807C, 0x807B, 0x807A, 0x8079, 0x8078, 0x8077,
	0x8076, 0x8075, 0x8074, 0x8073, 0x8072, 0x8071, 0x8070, 0x806F,
	0x806E, 0x806D, 0x806C, 0x806B, 0x806A, 0x8069, 0x8068, 0x8067,
	0x8066, 0x8065, 0x8064, 0x8063, 0x8062, 0x8061, 0x8060, 0x805F,
	0x805E, 0x805D, 0x805C, 0x805B, 0x805A, 0x8059, 0x8058, 0x8057,
	0x8056, 0x8055, 0x8054, 0x8053, 0x8052, 0x8051, 0x8050, 0x804F,
	0x804E, 0x804D, 0x804C, 0x804B, 0x804A, 0x8049, 0x8048, 0x8047,
	0x8046, 0x8045, 0x8044, 0x8043, 0x8042, 0x8041, 0x8040, 0x803F,
	0x803E, 0x803D, 0x803C, 0x803B, 0x803A, 0x8039, 0x8038, 0x8037,
	0x8036, 0x8035, 0x8034, 0x8033, 0x8032, 0x8031, 0x8030, 0x802F,
	0x802E, 0x802D, 0x802C, 0x802B, 0x802A, 0x8029, 0x8028, 0x8027,
	0x8026, 0x8025, 0x8024, 0x8023, 0x8022, 0x8021, 0x8020, 0x0008,
	0x801F, 0x801E, 0x801D, 0x801C, 0x801B, 0x801A, 0x8019, 0x8018,
	0x8017, 0x8016, 0x8015, 0x8014, 0x8013, 0x8012, 0x8011, 0x8010,
	0x800F, 0x800E, 0x800D, 0x800C, 0x800B, 0x800A, 0x8009, 0x8008,
	0x8007, 0x8006, 0x8005, 0x8004, 0x8003, 0x8002, 0x8001, 0x0000,
}

// transitionClassTriangles: listas canônicas de triângulos, como
// triplas de índices na lista de vértices do caso.
var transitionClassTriangles = [...][]uint8{
	{},
	{0, 2, 3, 1, 4, 2, 2, 4, 5, 2, 5, 3, 3, 5, 6, 4, 7, 5, 5, 7, 8, 5, 8, 6},
	{0, 3, 2, 1, 2, 4, 2, 3, 4},
	{0, 5, 1, 1, 5, 6, 1, 6, 3, 2, 3, 4, 3, 6, 7, 3, 7, 4, 5, 8, 6, 6, 8, 9, 6, 9, 7},
	{0, 1, 2, 1, 4, 2, 1, 6, 4, 2, 4, 5, 2, 5, 3, 4, 6, 7, 4, 7, 5},
	{0, 2, 4, 1, 8, 2, 2, 8, 9, 2, 9, 4, 3, 5, 6, 4, 9, 10, 4, 10, 5, 5, 10, 6, 6, 10, 11, 6, 11, 7, 8, 12, 9, 9, 12, 13, 9, 13, 14, 9, 14, 10, 10, 14, 11},
	{0, 2, 1, 1, 2, 7, 1, 5, 3, 1, 7, 5, 3, 5, 6, 3, 6, 4, 5, 7, 8, 5, 8, 6},
	{0, 5, 1, 1, 5, 6, 1, 6, 2, 2, 6, 7, 2, 7, 3, 3, 7, 8, 3, 8, 4, 5, 9, 6, 6, 9, 10, 6, 10, 11, 6, 11, 7, 7, 11, 8},
	{0, 1, 3, 1, 2, 4, 1, 4, 3},
	{0, 1, 2, 1, 3, 6, 1, 6, 2, 2, 6, 7, 3, 4, 5, 3, 5, 8, 3, 8, 6, 6, 8, 9, 6, 9, 7},
	{0, 4, 3, 1, 6, 8, 2, 3, 5, 3, 4, 5, 6, 7, 9, 6, 9, 8},
	{0, 4, 7, 0, 7, 2, 1, 2, 3, 2, 7, 8, 2, 8, 3, 4, 5, 6, 4, 6, 9, 4, 9, 7, 7, 9, 10, 7, 10, 8},
	{0, 5, 7, 1, 2, 3, 2, 9, 3, 2, 11, 9, 3, 9, 10, 3, 10, 4, 5, 6, 8, 5, 8, 7, 9, 11, 12, 9, 12, 10},
	{0, 1, 3, 1, 7, 10, 1, 10, 3, 2, 4, 5, 3, 10, 11, 3, 11, 4, 4, 11, 5, 5, 11, 12, 5, 12, 6, 7, 8, 9, 7, 9, 13, 7, 13, 10, 10, 13, 14, 10, 14, 15, 10, 15, 11, 11, 15, 12},
	{0, 3, 2, 1, 6, 8, 2, 3, 12, 2, 10, 4, 2, 12, 10, 4, 10, 11, 4, 11, 5, 6, 7, 9, 6, 9, 8, 10, 12, 13, 10, 13, 11},
	{0, 4, 7, 0, 7, 1, 1, 7, 8, 1, 8, 2, 2, 8, 9, 2, 9, 3, 4, 5, 6, 4, 6, 10, 4, 10, 7, 7, 10, 11, 7, 11, 12, 7, 12, 8, 8, 12, 9},
	{0, 1, 8, 0, 8, 3, 1, 2, 9, 1, 9, 8, 2, 4, 9, 3, 8, 10, 3, 10, 5, 4, 7, 11, 4, 11, 9, 5, 10, 6, 6, 10, 11, 6, 11, 7, 8, 9, 11, 8, 11, 10},
	{0, 2, 3, 1, 6, 5, 2, 4, 11, 2, 11, 14, 2, 14, 3, 4, 7, 11, 5, 6, 15, 5, 12, 8, 5, 15, 12, 7, 10, 13, 7, 13, 11, 8, 12, 9, 9, 12, 13, 9, 13, 10, 11, 13, 16, 11, 16, 14, 12, 15, 13, 13, 15, 16},
	{0, 3, 1, 1, 3, 11, 1, 11, 6, 2, 5, 4, 3, 4, 12, 3, 12, 11, 4, 5, 12, 5, 7, 12, 6, 11, 13, 6, 13, 8, 7, 10, 14, 7, 14, 12, 8, 13, 9, 9, 13, 14, 9, 14, 10, 11, 12, 14, 11, 14, 13},
	{0, 5, 4, 1, 3, 2, 2, 3, 10, 2, 10, 13, 3, 6, 10, 4, 5, 14, 4, 11, 7, 4, 14, 11, 6, 9, 12, 6, 12, 10, 7, 11, 8, 8, 11, 12, 8, 12, 9, 10, 12, 15, 10, 15, 13, 11, 14, 12, 12, 14, 15},
	{0, 2, 10, 0, 10, 5, 1, 3, 2, 2, 3, 14, 2, 14, 10, 4, 6, 13, 5, 10, 11, 5, 11, 7, 6, 9, 12, 6, 12, 15, 6, 15, 13, 7, 11, 8, 8, 11, 12, 8, 12, 9, 10, 12, 11, 10, 14, 15, 10, 15, 12},
	{0, 3, 4, 1, 8, 7, 2, 5, 3, 3, 5, 4, 6, 9, 15, 7, 8, 16, 7, 13, 10, 7, 16, 13, 9, 12, 14, 9, 14, 18, 9, 18, 15, 10, 13, 11, 11, 13, 14, 11, 14, 12, 13, 16, 14, 14, 16, 17, 14, 17, 18},
	{0, 2, 1, 1, 2, 9, 1, 9, 4, 2, 13, 9, 3, 5, 12, 4, 9, 10, 4, 10, 6, 5, 8, 11, 5, 11, 14, 5, 14, 12, 6, 10, 7, 7, 10, 11, 7, 11, 8, 9, 11, 10, 9, 13, 14, 9, 14, 11},
	{0, 3, 2, 1, 4, 10, 2, 3, 11, 2, 8, 5, 2, 11, 8, 4, 7, 9, 4, 9, 13, 4, 13, 10, 5, 8, 6, 6, 8, 9, 6, 9, 7, 8, 11, 9, 9, 11, 12, 9, 12, 13},
	{0, 1, 5, 1, 2, 11, 1, 11, 5, 2, 3, 12, 2, 12, 11, 3, 7, 12, 4, 6, 8, 5, 11, 6, 6, 11, 13, 6, 13, 8, 7, 10, 14, 7, 14, 12, 8, 13, 9, 9, 13, 14, 9, 14, 10, 11, 12, 14, 11, 14, 13},
	{0, 1, 2, 1, 3, 10, 1, 10, 13, 1, 13, 2, 3, 6, 10, 4, 5, 7, 5, 11, 7, 5, 14, 11, 6, 9, 12, 6, 12, 10, 7, 11, 8, 8, 11, 12, 8, 12, 9, 10, 12, 15, 10, 15, 13, 11, 14, 12, 12, 14, 15},
	{0, 4, 2, 1, 2, 8, 2, 4, 14, 2, 14, 8, 3, 6, 5, 4, 5, 15, 4, 15, 14, 5, 6, 15, 6, 10, 15, 7, 9, 11, 8, 14, 9, 9, 14, 16, 9, 16, 11, 10, 13, 17, 10, 17, 15, 11, 16, 12, 12, 16, 17, 12, 17, 13, 14, 15, 17, 14, 17, 16},
	{0, 2, 1, 1, 2, 9, 1, 9, 12, 2, 5, 9, 3, 4, 6, 4, 10, 6, 4, 13, 10, 5, 8, 11, 5, 11, 9, 6, 10, 7, 7, 10, 11, 7, 11, 8, 9, 11, 14, 9, 14, 12, 10, 13, 11, 11, 13, 14},
	{0, 1, 7, 1, 3, 13, 1, 13, 7, 2, 4, 3, 3, 4, 17, 3, 17, 13, 5, 9, 16, 6, 8, 10, 7, 13, 8, 8, 13, 14, 8, 14, 10, 9, 12, 15, 9, 15, 18, 9, 18, 16, 10, 14, 11, 11, 14, 15, 11, 15, 12, 13, 15, 14, 13, 17, 18, 13, 18, 15},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 8, 14, 6, 7, 9, 7, 12, 9, 7, 15, 12, 8, 11, 13, 8, 13, 17, 8, 17, 14, 9, 12, 10, 10, 12, 13, 10, 13, 11, 12, 15, 13, 13, 15, 16, 13, 16, 17},
	{0, 3, 2, 1, 2, 6, 2, 3, 12, 2, 12, 6, 3, 16, 12, 4, 8, 15, 5, 7, 9, 6, 12, 7, 7, 12, 13, 7, 13, 9, 8, 11, 14, 8, 14, 17, 8, 17, 15, 9, 13, 10, 10, 13, 14, 10, 14, 11, 12, 14, 13, 12, 16, 17, 12, 17, 14},
	{0, 3, 9, 1, 2, 4, 2, 7, 4, 2, 10, 7, 3, 6, 8, 3, 8, 12, 3, 12, 9, 4, 7, 5, 5, 7, 8, 5, 8, 6, 7, 10, 8, 8, 10, 11, 8, 11, 12},
	{0, 2, 3, 1, 5, 2, 2, 5, 7, 2, 7, 3, 3, 7, 11, 4, 9, 6, 5, 12, 7, 6, 9, 10, 6, 10, 8, 7, 12, 13, 7, 13, 11},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 8, 6, 6, 8, 9, 6, 9, 7},
	{0, 6, 1, 1, 6, 8, 1, 8, 3, 2, 3, 4, 3, 8, 12, 3, 12, 4, 5, 10, 7, 6, 13, 8, 7, 10, 11, 7, 11, 9, 8, 13, 14, 8, 14, 12},
	{0, 1, 2, 1, 4, 2, 1, 7, 4, 2, 4, 3, 3, 4, 8, 3, 6, 5, 3, 8, 6, 4, 7, 8},
	{0, 2, 4, 1, 7, 2, 2, 7, 9, 2, 9, 4, 3, 5, 6, 4, 9, 10, 4, 10, 5, 5, 10, 6, 6, 10, 8, 7, 13, 9, 8, 10, 15, 8, 12, 11, 8, 15, 12, 9, 13, 14, 9, 14, 15, 9, 15, 10},
	{0, 2, 1, 1, 2, 8, 1, 5, 3, 1, 8, 5, 3, 5, 4, 4, 5, 9, 4, 7, 6, 4, 9, 7, 5, 8, 9},
	{0, 4, 1, 1, 4, 6, 1, 6, 2, 2, 6, 7, 2, 7, 3, 3, 7, 5, 4, 10, 6, 5, 7, 12, 5, 9, 8, 5, 12, 9, 6, 10, 11, 6, 11, 12, 6, 12, 7},
	{0, 2, 4, 1, 8, 6, 2, 3, 5, 2, 5, 4, 6, 8, 9, 6, 9, 7},
	{0, 1, 2, 1, 4, 8, 1, 8, 2, 2, 8, 12, 3, 10, 7, 4, 5, 6, 4, 6, 13, 4, 13, 8, 7, 10, 11, 7, 11, 9, 8, 13, 14, 8, 14, 12},
	{0, 4, 3, 1, 7, 9, 2, 3, 5, 3, 4, 5, 6, 13, 11, 7, 8, 10, 7, 10, 9, 11, 13, 14, 11, 14, 12},
	{0, 5, 9, 0, 9, 2, 1, 2, 3, 2, 9, 13, 2, 13, 3, 4, 11, 8, 5, 6, 7, 5, 7, 14, 5, 14, 9, 8, 11, 12, 8, 12, 10, 9, 14, 15, 9, 15, 13},
	{0, 4, 6, 1, 2, 3, 2, 9, 3, 2, 12, 9, 3, 9, 8, 4, 5, 7, 4, 7, 6, 8, 9, 13, 8, 11, 10, 8, 13, 11, 9, 12, 13},
	{0, 1, 3, 1, 6, 10, 1, 10, 3, 2, 4, 5, 3, 10, 11, 3, 11, 4, 4, 11, 5, 5, 11, 9, 6, 7, 8, 6, 8, 14, 6, 14, 10, 9, 11, 16, 9, 13, 12, 9, 16, 13, 10, 14, 15, 10, 15, 16, 10, 16, 11},
	{0, 3, 2, 1, 5, 7, 2, 3, 13, 2, 10, 4, 2, 13, 10, 4, 10, 9, 5, 6, 8, 5, 8, 7, 9, 10, 14, 9, 12, 11, 9, 14, 12, 10, 13, 14},
	{0, 3, 7, 0, 7, 1, 1, 7, 8, 1, 8, 2, 2, 8, 6, 3, 4, 5, 3, 5, 11, 3, 11, 7, 6, 8, 13, 6, 10, 9, 6, 13, 10, 7, 11, 12, 7, 12, 13, 7, 13, 8},
	{0, 1, 8, 0, 8, 4, 1, 2, 9, 1, 9, 8, 2, 3, 13, 2, 13, 9, 4, 8, 10, 4, 10, 5, 5, 10, 6, 6, 10, 11, 6, 11, 7, 7, 11, 14, 7, 14, 12, 8, 9, 11, 8, 11, 10, 9, 13, 11, 11, 13, 14},
	{0, 2, 3, 1, 7, 6, 2, 4, 11, 2, 11, 17, 2, 17, 3, 4, 5, 15, 4, 15, 11, 6, 7, 18, 6, 12, 8, 6, 18, 12, 8, 12, 9, 9, 12, 13, 9, 13, 10, 10, 13, 16, 10, 16, 14, 11, 13, 19, 11, 15, 13, 11, 19, 17, 12, 18, 13, 13, 15, 16, 13, 18, 19},
	{0, 3, 1, 1, 3, 11, 1, 11, 7, 2, 5, 4, 3, 4, 12, 3, 12, 11, 4, 5, 12, 5, 6, 16, 5, 16, 12, 7, 11, 13, 7, 13, 8, 8, 13, 9, 9, 13, 14, 9, 14, 10, 10, 14, 17, 10, 17, 15, 11, 12, 14, 11, 14, 13, 12, 16, 14, 14, 16, 17},
	{0, 6, 5, 1, 3, 2, 2, 3, 10, 2, 10, 16, 3, 4, 14, 3, 14, 10, 5, 6, 17, 5, 11, 7, 5, 17, 11, 7, 11, 8, 8, 11, 12, 8, 12, 9, 9, 12, 15, 9, 15, 13, 10, 12, 18, 10, 14, 12, 10, 18, 16, 11, 17, 12, 12, 14, 15, 12, 17, 18},
	{0, 2, 8, 0, 8, 4, 1, 3, 2, 2, 3, 13, 2, 13, 8, 4, 8, 9, 4, 9, 5, 5, 9, 6, 6, 9, 10, 6, 10, 7, 7, 10, 12, 7, 12, 11, 8, 10, 9, 8, 13, 14, 8, 14, 10, 10, 14, 12},
	{0, 3, 4, 1, 7, 6, 2, 5, 3, 3, 5, 4, 6, 7, 15, 6, 11, 8, 6, 15, 11, 8, 11, 9, 9, 11, 12, 9, 12, 10, 10, 12, 14, 10, 14, 13, 11, 15, 12, 12, 15, 16, 12, 16, 17, 12, 17, 14},
	{0, 2, 1, 1, 2, 7, 1, 7, 3, 2, 12, 7, 3, 7, 8, 3, 8, 4, 4, 8, 5, 5, 8, 9, 5, 9, 6, 6, 9, 11, 6, 11, 10, 7, 9, 8, 7, 12, 13, 7, 13, 9, 9, 13, 11},
	{0, 2, 1, 1, 2, 10, 1, 6, 3, 1, 10, 6, 3, 6, 4, 4, 6, 7, 4, 7, 5, 5, 7, 9, 5, 9, 8, 6, 10, 7, 7, 10, 11, 7, 11, 12, 7, 12, 9},
	{0, 1, 6, 1, 2, 11, 1, 11, 6, 2, 3, 12, 2, 12, 11, 3, 4, 16, 3, 16, 12, 5, 7, 8, 6, 11, 7, 7, 11, 13, 7, 13, 8, 8, 13, 9, 9, 13, 14, 9, 14, 10, 10, 14, 17, 10, 17, 15, 11, 12, 14, 11, 14, 13, 12, 16, 14, 14, 16, 17},
	{0, 1, 2, 1, 3, 10, 1, 10, 16, 1, 16, 2, 3, 4, 14, 3, 14, 10, 5, 6, 7, 6, 11, 7, 6, 17, 11, 7, 11, 8, 8, 11, 12, 8, 12, 9, 9, 12, 15, 9, 15, 13, 10, 12, 18, 10, 14, 12, 10, 18, 16, 11, 17, 12, 12, 14, 15, 12, 17, 18},
	{0, 4, 2, 1, 2, 9, 2, 4, 14, 2, 14, 9, 3, 6, 5, 4, 5, 15, 4, 15, 14, 5, 6, 15, 6, 7, 19, 6, 19, 15, 8, 10, 11, 9, 14, 10, 10, 14, 16, 10, 16, 11, 11, 16, 12, 12, 16, 17, 12, 17, 13, 13, 17, 20, 13, 20, 18, 14, 15, 17, 14, 17, 16, 15, 19, 17, 17, 19, 20},
	{0, 2, 1, 1, 2, 9, 1, 9, 15, 2, 3, 13, 2, 13, 9, 4, 5, 6, 5, 10, 6, 5, 16, 10, 6, 10, 7, 7, 10, 11, 7, 11, 8, 8, 11, 14, 8, 14, 12, 9, 11, 17, 9, 13, 11, 9, 17, 15, 10, 16, 11, 11, 13, 14, 11, 16, 17},
	{0, 1, 6, 1, 3, 11, 1, 11, 6, 2, 4, 3, 3, 4, 16, 3, 16, 11, 5, 7, 8, 6, 11, 7, 7, 11, 12, 7, 12, 8, 8, 12, 9, 9, 12, 13, 9, 13, 10, 10, 13, 15, 10, 15, 14, 11, 13, 12, 11, 16, 17, 11, 17, 13, 13, 17, 15},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 6, 7, 6, 10, 7, 6, 14, 10, 7, 10, 8, 8, 10, 11, 8, 11, 9, 9, 11, 13, 9, 13, 12, 10, 14, 11, 11, 14, 15, 11, 15, 16, 11, 16, 13},
	{0, 3, 2, 1, 2, 5, 2, 3, 10, 2, 10, 5, 3, 15, 10, 4, 6, 7, 5, 10, 6, 6, 10, 11, 6, 11, 7, 7, 11, 8, 8, 11, 12, 8, 12, 9, 9, 12, 14, 9, 14, 13, 10, 12, 11, 10, 15, 16, 10, 16, 12, 12, 16, 14},
	{0, 1, 2, 1, 5, 2, 1, 9, 5, 2, 5, 3, 3, 5, 6, 3, 6, 4, 4, 6, 8, 4, 8, 7, 5, 9, 6, 6, 9, 10, 6, 10, 11, 6, 11, 8},
	{0, 2, 1, 1, 2, 3, 1, 3, 6, 2, 4, 5, 2, 5, 3, 3, 5, 7, 3, 7, 6},
	{0, 2, 3, 1, 5, 2, 2, 5, 8, 2, 8, 3, 3, 8, 12, 4, 7, 6, 5, 6, 8, 6, 7, 9, 6, 9, 8, 7, 10, 11, 7, 11, 9, 8, 9, 14, 8, 13, 12, 8, 14, 13, 9, 11, 14},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 7, 6, 6, 7, 8, 6, 8, 11, 7, 9, 10, 7, 10, 8, 8, 10, 12, 8, 12, 11},
	{0, 6, 1, 1, 6, 9, 1, 9, 3, 2, 3, 4, 3, 9, 13, 3, 13, 4, 5, 8, 7, 6, 7, 9, 7, 8, 10, 7, 10, 9, 8, 11, 12, 8, 12, 10, 9, 10, 15, 9, 14, 13, 9, 15, 14, 10, 12, 15},
	{0, 1, 2, 1, 7, 2, 1, 12, 7, 2, 7, 9, 2, 9, 3, 4, 6, 5, 5, 6, 8, 5, 8, 13, 6, 10, 11, 6, 11, 8, 7, 12, 14, 7, 14, 9, 8, 11, 15, 8, 15, 13},
	{0, 2, 4, 1, 9, 2, 2, 9, 12, 2, 12, 4, 3, 5, 6, 4, 12, 13, 4, 13, 5, 5, 13, 6, 6, 13, 15, 6, 15, 7, 8, 11, 10, 9, 10, 12, 10, 11, 14, 10, 14, 12, 11, 16, 17, 11, 17, 14, 12, 14, 20, 12, 18, 19, 12, 19, 13, 12, 20, 18, 13, 19, 15, 14, 17, 20},
	{0, 2, 1, 1, 2, 13, 1, 8, 3, 1, 13, 8, 3, 8, 10, 3, 10, 4, 5, 7, 6, 6, 7, 9, 6, 9, 14, 7, 11, 12, 7, 12, 9, 8, 13, 15, 8, 15, 10, 9, 12, 16, 9, 16, 14},
	{0, 6, 1, 1, 6, 9, 1, 9, 2, 2, 9, 10, 2, 10, 3, 3, 10, 12, 3, 12, 4, 5, 8, 7, 6, 7, 9, 7, 8, 11, 7, 11, 9, 8, 13, 14, 8, 14, 11, 9, 11, 17, 9, 15, 16, 9, 16, 10, 9, 17, 15, 10, 16, 12, 11, 14, 17},
	{0, 1, 2, 1, 3, 4, 1, 4, 7, 1, 7, 2, 3, 5, 6, 3, 6, 4, 4, 6, 8, 4, 8, 7},
	{0, 1, 2, 1, 3, 5, 1, 5, 2, 2, 5, 9, 3, 4, 6, 3, 6, 5, 4, 7, 8, 4, 8, 6, 5, 6, 11, 5, 10, 9, 5, 11, 10, 6, 8, 11},
	{0, 4, 3, 1, 6, 7, 2, 3, 5, 3, 4, 5, 6, 8, 9, 6, 9, 12, 6, 12, 7, 8, 10, 11, 8, 11, 9, 9, 11, 13, 9, 13, 12},
	{0, 4, 6, 0, 6, 2, 1, 2, 3, 2, 6, 10, 2, 10, 3, 4, 5, 7, 4, 7, 6, 5, 8, 9, 5, 9, 7, 6, 7, 12, 6, 11, 10, 6, 12, 11, 7, 9, 12},
	{0, 5, 6, 1, 2, 3, 2, 8, 3, 2, 13, 8, 3, 8, 10, 3, 10, 4, 5, 7, 9, 5, 9, 14, 5, 14, 6, 7, 11, 12, 7, 12, 9, 8, 13, 15, 8, 15, 10, 9, 12, 16, 9, 16, 14},
	{0, 1, 3, 1, 7, 9, 1, 9, 3, 2, 4, 5, 3, 9, 10, 3, 10, 4, 4, 10, 5, 5, 10, 12, 5, 12, 6, 7, 8, 11, 7, 11, 9, 8, 13, 14, 8, 14, 11, 9, 11, 17, 9, 15, 16, 9, 16, 10, 9, 17, 15, 10, 16, 12, 11, 14, 17},
	{0, 3, 2, 1, 6, 7, 2, 3, 14, 2, 9, 4, 2, 14, 9, 4, 9, 11, 4, 11, 5, 6, 8, 10, 6, 10, 15, 6, 15, 7, 8, 12, 13, 8, 13, 10, 9, 14, 16, 9, 16, 11, 10, 13, 17, 10, 17, 15},
	{0, 4, 6, 0, 6, 1, 1, 6, 7, 1, 7, 2, 2, 7, 9, 2, 9, 3, 4, 5, 8, 4, 8, 6, 5, 10, 11, 5, 11, 8, 6, 8, 14, 6, 12, 13, 6, 13, 7, 6, 14, 12, 7, 13, 9, 8, 11, 14},
	{0, 1, 9, 0, 9, 3, 1, 2, 10, 1, 10, 9, 2, 6, 10, 3, 5, 4, 3, 9, 14, 3, 14, 5, 6, 8, 11, 6, 11, 10, 7, 11, 8, 7, 12, 13, 7, 13, 15, 7, 15, 11, 9, 10, 11, 9, 11, 15, 9, 15, 14},
	{0, 2, 3, 1, 7, 5, 2, 4, 12, 2, 12, 16, 2, 16, 3, 4, 9, 12, 5, 7, 8, 5, 8, 6, 9, 11, 13, 9, 13, 12, 10, 13, 11, 10, 14, 15, 10, 15, 18, 10, 18, 13, 12, 13, 17, 12, 17, 16, 13, 18, 17},
	{0, 3, 1, 1, 3, 12, 1, 12, 6, 2, 5, 4, 3, 4, 13, 3, 13, 12, 4, 5, 13, 5, 9, 13, 6, 8, 7, 6, 12, 17, 6, 17, 8, 9, 11, 14, 9, 14, 13, 10, 14, 11, 10, 15, 16, 10, 16, 18, 10, 18, 14, 12, 13, 14, 12, 14, 18, 12, 18, 17},
	{0, 6, 4, 1, 3, 2, 2, 3, 11, 2, 11, 15, 3, 8, 11, 4, 6, 7, 4, 7, 5, 8, 10, 12, 8, 12, 11, 9, 12, 10, 9, 13, 14, 9, 14, 17, 9, 17, 12, 11, 12, 16, 11, 16, 15, 12, 17, 16},
	{0, 2, 11, 0, 11, 5, 1, 3, 2, 2, 3, 16, 2, 16, 11, 4, 8, 13, 5, 7, 6, 5, 11, 17, 5, 17, 7, 8, 10, 12, 8, 12, 18, 8, 18, 13, 9, 12, 10, 9, 14, 15, 9, 15, 19, 9, 19, 12, 11, 12, 19, 11, 16, 18, 11, 18, 12, 11, 19, 17},
	{0, 3, 4, 1, 9, 7, 2, 5, 3, 3, 5, 4, 6, 11, 15, 7, 9, 10, 7, 10, 8, 11, 13, 14, 11, 14, 19, 11, 19, 15, 12, 14, 13, 12, 16, 17, 12, 17, 20, 12, 20, 14, 14, 18, 19, 14, 20, 18},
	{0, 2, 1, 1, 2, 10, 1, 10, 4, 2, 15, 10, 3, 7, 12, 4, 6, 5, 4, 10, 16, 4, 16, 6, 7, 9, 11, 7, 11, 17, 7, 17, 12, 8, 11, 9, 8, 13, 14, 8, 14, 18, 8, 18, 11, 10, 11, 18, 10, 15, 17, 10, 17, 11, 10, 18, 16},
	{0, 4, 2, 1, 6, 10, 2, 4, 5, 2, 5, 3, 6, 8, 9, 6, 9, 14, 6, 14, 10, 7, 9, 8, 7, 11, 12, 7, 12, 15, 7, 15, 9, 9, 13, 14, 9, 15, 13},
	{0, 1, 4, 1, 2, 8, 1, 8, 4, 2, 3, 9, 2, 9, 8, 3, 5, 9, 4, 8, 13, 5, 7, 10, 5, 10, 9, 6, 10, 7, 6, 11, 12, 6, 12, 14, 6, 14, 10, 8, 9, 10, 8, 10, 14, 8, 14, 13},
	{0, 1, 2, 1, 3, 7, 1, 7, 11, 1, 11, 2, 3, 4, 7, 4, 6, 8, 4, 8, 7, 5, 8, 6, 5, 9, 10, 5, 10, 13, 5, 13, 8, 7, 8, 12, 7, 12, 11, 8, 13, 12},
	{0, 4, 2, 1, 2, 7, 2, 4, 11, 2, 11, 7, 3, 6, 5, 4, 5, 12, 4, 12, 11, 5, 6, 12, 6, 8, 12, 7, 11, 16, 8, 10, 13, 8, 13, 12, 9, 13, 10, 9, 14, 15, 9, 15, 17, 9, 17, 13, 11, 12, 13, 11, 13, 17, 11, 17, 16},
	{0, 2, 1, 1, 2, 6, 1, 6, 10, 2, 3, 6, 3, 5, 7, 3, 7, 6, 4, 7, 5, 4, 8, 9, 4, 9, 12, 4, 12, 7, 6, 7, 11, 6, 11, 10, 7, 12, 11},
	{0, 1, 6, 1, 3, 10, 1, 10, 6, 2, 4, 3, 3, 4, 15, 3, 15, 10, 5, 7, 12, 6, 10, 16, 7, 9, 11, 7, 11, 17, 7, 17, 12, 8, 11, 9, 8, 13, 14, 8, 14, 18, 8, 18, 11, 10, 11, 18, 10, 15, 17, 10, 17, 11, 10, 18, 16},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 6, 10, 6, 8, 9, 6, 9, 14, 6, 14, 10, 7, 9, 8, 7, 11, 12, 7, 12, 15, 7, 15, 9, 9, 13, 14, 9, 15, 13},
	{0, 3, 2, 1, 2, 5, 2, 3, 9, 2, 9, 5, 3, 14, 9, 4, 6, 11, 5, 9, 15, 6, 8, 10, 6, 10, 16, 6, 16, 11, 7, 10, 8, 7, 12, 13, 7, 13, 17, 7, 17, 10, 9, 10, 17, 9, 14, 16, 9, 16, 10, 9, 17, 15},
	{0, 1, 5, 1, 3, 4, 1, 4, 9, 1, 9, 5, 2, 4, 3, 2, 6, 7, 2, 7, 10, 2, 10, 4, 4, 8, 9, 4, 10, 8},
	{0, 7, 3, 1, 4, 2, 2, 4, 5, 2, 5, 11, 3, 7, 8, 3, 8, 6, 4, 9, 10, 4, 10, 5, 5, 10, 12, 5, 12, 11},
	{0, 2, 3, 1, 6, 2, 2, 6, 10, 2, 10, 3, 3, 10, 17, 4, 13, 8, 5, 9, 7, 6, 7, 10, 7, 9, 11, 7, 11, 10, 8, 13, 14, 8, 14, 12, 9, 15, 16, 9, 16, 11, 10, 11, 19, 10, 18, 17, 10, 19, 18, 11, 16, 19},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 12, 8, 6, 9, 7, 7, 9, 10, 7, 10, 16, 8, 12, 13, 8, 13, 11, 9, 14, 15, 9, 15, 10, 10, 15, 17, 10, 17, 16},
	{0, 7, 1, 1, 7, 11, 1, 11, 3, 2, 3, 4, 3, 11, 18, 3, 18, 4, 5, 14, 9, 6, 10, 8, 7, 8, 11, 8, 10, 12, 8, 12, 11, 9, 14, 15, 9, 15, 13, 10, 16, 17, 10, 17, 12, 11, 12, 20, 11, 19, 18, 11, 20, 19, 12, 17, 20},
	{0, 1, 2, 1, 7, 2, 1, 13, 7, 2, 7, 5, 3, 6, 4, 4, 6, 8, 4, 8, 14, 5, 7, 15, 5, 10, 9, 5, 15, 10, 6, 11, 12, 6, 12, 8, 7, 13, 15, 8, 12, 16, 8, 16, 14},
	{0, 2, 4, 1, 8, 2, 2, 8, 12, 2, 12, 4, 3, 5, 6, 4, 12, 13, 4, 13, 5, 5, 13, 6, 6, 13, 10, 7, 11, 9, 8, 9, 12, 9, 11, 14, 9, 14, 12, 10, 13, 20, 10, 16, 15, 10, 20, 16, 11, 17, 18, 11, 18, 14, 12, 14, 21, 12, 19, 20, 12, 20, 13, 12, 21, 19, 14, 18, 21},
	{0, 2, 1, 1, 2, 14, 1, 8, 3, 1, 14, 8, 3, 8, 6, 4, 7, 5, 5, 7, 9, 5, 9, 15, 6, 8, 16, 6, 11, 10, 6, 16, 11, 7, 12, 13, 7, 13, 9, 8, 14, 16, 9, 13, 17, 9, 17, 15},
	{0, 5, 1, 1, 5, 9, 1, 9, 2, 2, 9, 10, 2, 10, 3, 3, 10, 7, 4, 8, 6, 5, 6, 9, 6, 8, 11, 6, 11, 9, 7, 10, 17, 7, 13, 12, 7, 17, 13, 8, 14, 15, 8, 15, 11, 9, 11, 18, 9, 16, 17, 9, 17, 10, 9, 18, 16, 11, 15, 18},
	{0, 2, 3, 1, 8, 4, 2, 5, 6, 2, 6, 12, 2, 12, 3, 4, 8, 9, 4, 9, 7, 5, 10, 11, 5, 11, 6, 6, 11, 13, 6, 13, 12},
	{0, 1, 2, 1, 4, 7, 1, 7, 2, 2, 7, 14, 3, 10, 5, 4, 6, 8, 4, 8, 7, 5, 10, 11, 5, 11, 9, 6, 12, 13, 6, 13, 8, 7, 8, 16, 7, 15, 14, 7, 16, 15, 8, 13, 16},
	{0, 4, 3, 1, 7, 8, 2, 3, 5, 3, 4, 5, 6, 13, 9, 7, 10, 11, 7, 11, 17, 7, 17, 8, 9, 13, 14, 9, 14, 12, 10, 15, 16, 10, 16, 11, 11, 16, 18, 11, 18, 17},
	{0, 5, 8, 0, 8, 2, 1, 2, 3, 2, 8, 15, 2, 15, 3, 4, 11, 6, 5, 7, 9, 5, 9, 8, 6, 11, 12, 6, 12, 10, 7, 13, 14, 7, 14, 9, 8, 9, 17, 8, 16, 15, 8, 17, 16, 9, 14, 17},
	{0, 4, 5, 1, 2, 3, 2, 8, 3, 2, 14, 8, 3, 8, 6, 4, 7, 9, 4, 9, 15, 4, 15, 5, 6, 8, 16, 6, 11, 10, 6, 16, 11, 7, 12, 13, 7, 13, 9, 8, 14, 16, 9, 13, 17, 9, 17, 15},
	{0, 1, 3, 1, 6, 9, 1, 9, 3, 2, 4, 5, 3, 9, 10, 3, 10, 4, 4, 10, 5, 5, 10, 7, 6, 8, 11, 6, 11, 9, 7, 10, 17, 7, 13, 12, 7, 17, 13, 8, 14, 15, 8, 15, 11, 9, 11, 18, 9, 16, 17, 9, 17, 10, 9, 18, 16, 11, 15, 18},
	{0, 3, 2, 1, 5, 6, 2, 3, 15, 2, 9, 4, 2, 15, 9, 4, 9, 7, 5, 8, 10, 5, 10, 16, 5, 16, 6, 7, 9, 17, 7, 12, 11, 7, 17, 12, 8, 13, 14, 8, 14, 10, 9, 15, 17, 10, 14, 18, 10, 18, 16},
	{0, 3, 6, 0, 6, 1, 1, 6, 7, 1, 7, 2, 2, 7, 4, 3, 5, 8, 3, 8, 6, 4, 7, 14, 4, 10, 9, 4, 14, 10, 5, 11, 12, 5, 12, 8, 6, 8, 15, 6, 13, 14, 6, 14, 7, 6, 15, 13, 8, 12, 15},
	{0, 1, 9, 0, 9, 4, 1, 2, 10, 1, 10, 9, 2, 3, 13, 2, 13, 10, 4, 6, 5, 4, 9, 17, 4, 17, 6, 7, 11, 8, 7, 15, 16, 7, 16, 18, 7, 18, 11, 8, 11, 14, 8, 14, 12, 9, 10, 11, 9, 11, 18, 9, 18, 17, 10, 13, 11, 11, 13, 14},
	{0, 2, 3, 1, 8, 6, 2, 4, 12, 2, 12, 19, 2, 19, 3, 4, 5, 15, 4, 15, 12, 6, 8, 9, 6, 9, 7, 10, 13, 11, 10, 17, 18, 10, 18, 21, 10, 21, 13, 11, 13, 16, 11, 16, 14, 12, 13, 20, 12, 15, 13, 12, 20, 19, 13, 15, 16, 13, 21, 20},
	{0, 3, 1, 1, 3, 12, 1, 12, 7, 2, 5, 4, 3, 4, 13, 3, 13, 12, 4, 5, 13, 5, 6, 16, 5, 16, 13, 7, 9, 8, 7, 12, 20, 7, 20, 9, 10, 14, 11, 10, 18, 19, 10, 19, 21, 10, 21, 14, 11, 14, 17, 11, 17, 15, 12, 13, 14, 12, 14, 21, 12, 21, 20, 13, 16, 14, 14, 16, 17},
	{0, 7, 5, 1, 3, 2, 2, 3, 11, 2, 11, 18, 3, 4, 14, 3, 14, 11, 5, 7, 8, 5, 8, 6, 9, 12, 10, 9, 16, 17, 9, 17, 20, 9, 20, 12, 10, 12, 15, 10, 15, 13, 11, 12, 19, 11, 14, 12, 11, 19, 18, 12, 14, 15, 12, 20, 19},
	{0, 2, 9, 0, 9, 4, 1, 3, 2, 2, 3, 15, 2, 15, 9, 4, 6, 5, 4, 9, 16, 4, 16, 6, 7, 10, 8, 7, 13, 14, 7, 14, 18, 7, 18, 10, 8, 10, 12, 8, 12, 11, 9, 10, 18, 9, 15, 17, 9, 17, 10, 9, 18, 16, 10, 17, 12},
	{0, 3, 4, 1, 8, 6, 2, 5, 3, 3, 5, 4, 6, 8, 9, 6, 9, 7, 10, 12, 11, 10, 15, 16, 10, 16, 19, 10, 19, 12, 11, 12, 14, 11, 14, 13, 12, 17, 18, 12, 18, 14, 12, 19, 17},
	{0, 2, 1, 1, 2, 8, 1, 8, 3, 2, 14, 8, 3, 5, 4, 3, 8, 15, 3, 15, 5, 6, 9, 7, 6, 12, 13, 6, 13, 17, 6, 17, 9, 7, 9, 11, 7, 11, 10, 8, 9, 17, 8, 14, 16, 8, 16, 9, 8, 17, 15, 9, 16, 11},
	{0, 3, 1, 1, 3, 4, 1, 4, 2, 5, 7, 6, 5, 10, 11, 5, 11, 14, 5, 14, 7, 6, 7, 9, 6, 9, 8, 7, 12, 13, 7, 13, 9, 7, 14, 12},
	{0, 1, 5, 1, 2, 8, 1, 8, 5, 2, 3, 9, 2, 9, 8, 3, 4, 12, 3, 12, 9, 5, 8, 16, 6, 10, 7, 6, 14, 15, 6, 15, 17, 6, 17, 10, 7, 10, 13, 7, 13, 11, 8, 9, 10, 8, 10, 17, 8, 17, 16, 9, 12, 10, 10, 12, 13},
	{0, 1, 2, 1, 3, 7, 1, 7, 14, 1, 14, 2, 3, 4, 10, 3, 10, 7, 5, 8, 6, 5, 12, 13, 5, 13, 16, 5, 16, 8, 6, 8, 11, 6, 11, 9, 7, 8, 15, 7, 10, 8, 7, 15, 14, 8, 10, 11, 8, 16, 15},
	{0, 4, 2, 1, 2, 8, 2, 4, 11, 2, 11, 8, 3, 6, 5, 4, 5, 12, 4, 12, 11, 5, 6, 12, 6, 7, 15, 6, 15, 12, 8, 11, 19, 9, 13, 10, 9, 17, 18, 9, 18, 20, 9, 20, 13, 10, 13, 16, 10, 16, 14, 11, 12, 13, 11, 13, 20, 11, 20, 19, 12, 15, 13, 13, 15, 16},
	{0, 2, 1, 1, 2, 6, 1, 6, 13, 2, 3, 9, 2, 9, 6, 4, 7, 5, 4, 11, 12, 4, 12, 15, 4, 15, 7, 5, 7, 10, 5, 10, 8, 6, 7, 14, 6, 9, 7, 6, 14, 13, 7, 9, 10, 7, 15, 14},
	{0, 1, 5, 1, 3, 8, 1, 8, 5, 2, 4, 3, 3, 4, 14, 3, 14, 8, 5, 8, 15, 6, 9, 7, 6, 12, 13, 6, 13, 17, 6, 17, 9, 7, 9, 11, 7, 11, 10, 8, 9, 17, 8, 14, 16, 8, 16, 9, 8, 17, 15, 9, 16, 11},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 7, 6, 5, 10, 11, 5, 11, 14, 5, 14, 7, 6, 7, 9, 6, 9, 8, 7, 12, 13, 7, 13, 9, 7, 14, 12},
	{0, 3, 2, 1, 2, 4, 2, 3, 7, 2, 7, 4, 3, 13, 7, 4, 7, 14, 5, 8, 6, 5, 11, 12, 5, 12, 16, 5, 16, 8, 6, 8, 10, 6, 10, 9, 7, 8, 16, 7, 13, 15, 7, 15, 8, 7, 16, 14, 8, 15, 10},
	{0, 2, 1, 0, 5, 6, 0, 6, 9, 0, 9, 2, 1, 2, 4, 1, 4, 3, 2, 7, 8, 2, 8, 4, 2, 9, 7},
	{0, 2, 4, 0, 3, 1, 0, 4, 3},
	{0, 2, 3, 1, 4, 2, 2, 4, 6, 2, 6, 3, 3, 6, 11, 4, 12, 6, 5, 8, 10, 5, 9, 7, 5, 10, 9, 6, 12, 13, 6, 13, 11},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 7, 9, 5, 8, 6, 5, 9, 8},
	{0, 5, 1, 1, 5, 7, 1, 7, 3, 2, 3, 4, 3, 7, 12, 3, 12, 4, 5, 13, 7, 6, 9, 11, 6, 10, 8, 6, 11, 10, 7, 13, 14, 7, 14, 12},
	{0, 1, 2, 1, 5, 2, 1, 11, 5, 2, 5, 6, 2, 6, 3, 4, 8, 10, 4, 9, 7, 4, 10, 9, 5, 11, 12, 5, 12, 6},
	{0, 2, 4, 1, 8, 2, 2, 8, 10, 2, 10, 4, 3, 5, 6, 4, 10, 11, 4, 11, 5, 5, 11, 6, 6, 11, 12, 6, 12, 7, 8, 17, 10, 9, 14, 16, 9, 15, 13, 9, 16, 15, 10, 17, 18, 10, 18, 19, 10, 19, 11, 11, 19, 12},
	{0, 2, 1, 1, 2, 12, 1, 6, 3, 1, 12, 6, 3, 6, 7, 3, 7, 4, 5, 9, 11, 5, 10, 8, 5, 11, 10, 6, 12, 13, 6, 13, 7},
	{0, 5, 1, 1, 5, 7, 1, 7, 2, 2, 7, 8, 2, 8, 3, 3, 8, 9, 3, 9, 4, 5, 14, 7, 6, 11, 13, 6, 12, 10, 6, 13, 12, 7, 14, 15, 7, 15, 16, 7, 16, 8, 8, 16, 9},
	{0, 1, 3, 1, 2, 4, 1, 4, 3, 5, 7, 9, 5, 8, 6, 5, 9, 8},
	{0, 1, 2, 1, 3, 7, 1, 7, 2, 2, 7, 12, 3, 4, 5, 3, 5, 13, 3, 13, 7, 6, 9, 11, 6, 10, 8, 6, 11, 10, 7, 13, 14, 7, 14, 12},
	{0, 4, 3, 1, 6, 8, 2, 3, 5, 3, 4, 5, 6, 7, 9, 6, 9, 8, 10, 12, 14, 10, 13, 11, 10, 14, 13},
	{0, 4, 8, 0, 8, 2, 1, 2, 3, 2, 8, 13, 2, 13, 3, 4, 5, 6, 4, 6, 14, 4, 14, 8, 7, 10, 12, 7, 11, 9, 7, 12, 11, 8, 14, 15, 8, 15, 13},
	{0, 5, 7, 1, 2, 3, 2, 10, 3, 2, 16, 10, 3, 10, 11, 3, 11, 4, 5, 6, 8, 5, 8, 7, 9, 13, 15, 9, 14, 12, 9, 15, 14, 10, 16, 17, 10, 17, 11},
	{0, 1, 3, 1, 7, 11, 1, 11, 3, 2, 4, 5, 3, 11, 12, 3, 12, 4, 4, 12, 5, 5, 12, 13, 5, 13, 6, 7, 8, 9, 7, 9, 18, 7, 18, 11, 10, 15, 17, 10, 16, 14, 10, 17, 16, 11, 18, 19, 11, 19, 20, 11, 20, 12, 12, 20, 13},
	{0, 3, 2, 1, 6, 8, 2, 3, 17, 2, 11, 4, 2, 17, 11, 4, 11, 12, 4, 12, 5, 6, 7, 9, 6, 9, 8, 10, 14, 16, 10, 15, 13, 10, 16, 15, 11, 17, 18, 11, 18, 12},
	{0, 4, 8, 0, 8, 1, 1, 8, 9, 1, 9, 2, 2, 9, 10, 2, 10, 3, 4, 5, 6, 4, 6, 15, 4, 15, 8, 7, 12, 14, 7, 13, 11, 7, 14, 13, 8, 15, 16, 8, 16, 17, 8, 17, 9, 9, 17, 10},
	{0, 1, 7, 0, 7, 3, 1, 2, 8, 1, 8, 7, 2, 4, 8, 3, 7, 9, 3, 9, 5, 4, 6, 10, 4, 10, 8, 5, 9, 13, 5, 13, 11, 6, 12, 14, 6, 14, 10, 7, 8, 10, 7, 10, 9, 9, 10, 14, 9, 14, 13},
	{0, 2, 3, 1, 6, 5, 2, 4, 10, 2, 10, 17, 2, 17, 3, 4, 7, 10, 5, 6, 18, 5, 11, 8, 5, 18, 11, 7, 9, 12, 7, 12, 10, 8, 11, 15, 8, 15, 13, 9, 14, 16, 9, 16, 12, 10, 12, 19, 10, 19, 17, 11, 12, 16, 11, 16, 15, 11, 18, 12, 12, 18, 19},
	{0, 3, 1, 1, 3, 10, 1, 10, 6, 2, 5, 4, 3, 4, 11, 3, 11, 10, 4, 5, 11, 5, 7, 11, 6, 10, 12, 6, 12, 8, 7, 9, 13, 7, 13, 11, 8, 12, 16, 8, 16, 14, 9, 15, 17, 9, 17, 13, 10, 11, 13, 10, 13, 12, 12, 13, 17, 12, 17, 16},
	{0, 5, 4, 1, 3, 2, 2, 3, 9, 2, 9, 16, 3, 6, 9, 4, 5, 17, 4, 10, 7, 4, 17, 10, 6, 8, 11, 6, 11, 9, 7, 10, 14, 7, 14, 12, 8, 13, 15, 8, 15, 11, 9, 11, 18, 9, 18, 16, 10, 11, 15, 10, 15, 14, 10, 17, 11, 11, 17, 18},
	{0, 2, 9, 0, 9, 5, 1, 3, 2, 2, 3, 17, 2, 17, 9, 4, 6, 12, 5, 9, 10, 5, 10, 7, 6, 8, 11, 6, 11, 18, 6, 18, 12, 7, 10, 15, 7, 15, 13, 8, 14, 16, 8, 16, 11, 9, 11, 10, 9, 17, 18, 9, 18, 11, 10, 11, 16, 10, 16, 15},
	{0, 3, 4, 1, 8, 7, 2, 5, 3, 3, 5, 4, 6, 9, 14, 7, 8, 19, 7, 12, 10, 7, 19, 12, 9, 11, 13, 9, 13, 21, 9, 21, 14, 10, 12, 17, 10, 17, 15, 11, 16, 18, 11, 18, 13, 12, 13, 18, 12, 18, 17, 12, 19, 13, 13, 19, 20, 13, 20, 21},
	{0, 2, 1, 1, 2, 8, 1, 8, 4, 2, 16, 8, 3, 5, 11, 4, 8, 9, 4, 9, 6, 5, 7, 10, 5, 10, 17, 5, 17, 11, 6, 9, 14, 6, 14, 12, 7, 13, 15, 7, 15, 10, 8, 10, 9, 8, 16, 17, 8, 17, 10, 9, 10, 15, 9, 15, 14},
	{0, 3, 2, 1, 4, 9, 2, 3, 14, 2, 7, 5, 2, 14, 7, 4, 6, 8, 4, 8, 16, 4, 16, 9, 5, 7, 12, 5, 12, 10, 6, 11, 13, 6, 13, 8, 7, 8, 13, 7, 13, 12, 7, 14, 8, 8, 14, 15, 8, 15, 16},
	{0, 1, 5, 1, 2, 10, 1, 10, 5, 2, 3, 11, 2, 11, 10, 3, 7, 11, 4, 6, 8, 5, 10, 6, 6, 10, 12, 6, 12, 8, 7, 9, 13, 7, 13, 11, 8, 12, 16, 8, 16, 14, 9, 15, 17, 9, 17, 13, 10, 11, 13, 10, 13, 12, 12, 13, 17, 12, 17, 16},
	{0, 1, 2, 1, 3, 9, 1, 9, 16, 1, 16, 2, 3, 6, 9, 4, 5, 7, 5, 10, 7, 5, 17, 10, 6, 8, 11, 6, 11, 9, 7, 10, 14, 7, 14, 12, 8, 13, 15, 8, 15, 11, 9, 11, 18, 9, 18, 16, 10, 11, 15, 10, 15, 14, 10, 17, 11, 11, 17, 18},
	{0, 4, 2, 1, 2, 8, 2, 4, 13, 2, 13, 8, 3, 6, 5, 4, 5, 14, 4, 14, 13, 5, 6, 14, 6, 10, 14, 7, 9, 11, 8, 13, 9, 9, 13, 15, 9, 15, 11, 10, 12, 16, 10, 16, 14, 11, 15, 19, 11, 19, 17, 12, 18, 20, 12, 20, 16, 13, 14, 16, 13, 16, 15, 15, 16, 20, 15, 20, 19},
	{0, 2, 1, 1, 2, 8, 1, 8, 15, 2, 5, 8, 3, 4, 6, 4, 9, 6, 4, 16, 9, 5, 7, 10, 5, 10, 8, 6, 9, 13, 6, 13, 11, 7, 12, 14, 7, 14, 10, 8, 10, 17, 8, 17, 15, 9, 10, 14, 9, 14, 13, 9, 16, 10, 10, 16, 17},
	{0, 1, 7, 1, 3, 12, 1, 12, 7, 2, 4, 3, 3, 4, 20, 3, 20, 12, 5, 9, 15, 6, 8, 10, 7, 12, 8, 8, 12, 13, 8, 13, 10, 9, 11, 14, 9, 14, 21, 9, 21, 15, 10, 13, 18, 10, 18, 16, 11, 17, 19, 11, 19, 14, 12, 14, 13, 12, 20, 21, 12, 21, 14, 13, 14, 19, 13, 19, 18},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 8, 13, 6, 7, 9, 7, 11, 9, 7, 18, 11, 8, 10, 12, 8, 12, 20, 8, 20, 13, 9, 11, 16, 9, 16, 14, 10, 15, 17, 10, 17, 12, 11, 12, 17, 11, 17, 16, 11, 18, 12, 12, 18, 19, 12, 19, 20},
	{0, 3, 2, 1, 2, 6, 2, 3, 11, 2, 11, 6, 3, 19, 11, 4, 8, 14, 5, 7, 9, 6, 11, 7, 7, 11, 12, 7, 12, 9, 8, 10, 13, 8, 13, 20, 8, 20, 14, 9, 12, 17, 9, 17, 15, 10, 16, 18, 10, 18, 13, 11, 13, 12, 11, 19, 20, 11, 20, 13, 12, 13, 18, 12, 18, 17},
	{0, 3, 8, 1, 2, 4, 2, 6, 4, 2, 13, 6, 3, 5, 7, 3, 7, 15, 3, 15, 8, 4, 6, 11, 4, 11, 9, 5, 10, 12, 5, 12, 7, 6, 7, 12, 6, 12, 11, 6, 13, 7, 7, 13, 14, 7, 14, 15},
	{0, 4, 1, 1, 4, 5, 1, 5, 3, 2, 7, 9, 2, 8, 6, 2, 9, 8},
	{0, 2, 3, 1, 5, 2, 2, 5, 8, 2, 8, 3, 3, 8, 16, 4, 10, 6, 5, 17, 8, 6, 10, 11, 6, 11, 9, 7, 13, 15, 7, 14, 12, 7, 15, 14, 8, 17, 18, 8, 18, 16},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 9, 6, 6, 9, 10, 6, 10, 8, 7, 12, 14, 7, 13, 11, 7, 14, 13},
	{0, 6, 1, 1, 6, 9, 1, 9, 3, 2, 3, 4, 3, 9, 17, 3, 17, 4, 5, 11, 7, 6, 18, 9, 7, 11, 12, 7, 12, 10, 8, 14, 16, 8, 15, 13, 8, 16, 15, 9, 18, 19, 9, 19, 17},
	{0, 1, 2, 1, 5, 2, 1, 12, 5, 2, 5, 3, 3, 5, 13, 3, 7, 6, 3, 13, 7, 4, 9, 11, 4, 10, 8, 4, 11, 10, 5, 12, 13},
	{0, 2, 4, 1, 7, 2, 2, 7, 10, 2, 10, 4, 3, 5, 6, 4, 10, 11, 4, 11, 5, 5, 11, 6, 6, 11, 8, 7, 18, 10, 8, 11, 20, 8, 13, 12, 8, 20, 13, 9, 15, 17, 9, 16, 14, 9, 17, 16, 10, 18, 19, 10, 19, 20, 10, 20, 11},
	{0, 2, 1, 1, 2, 13, 1, 6, 3, 1, 13, 6, 3, 6, 4, 4, 6, 14, 4, 8, 7, 4, 14, 8, 5, 10, 12, 5, 11, 9, 5, 12, 11, 6, 13, 14},
	{0, 4, 1, 1, 4, 7, 1, 7, 2, 2, 7, 8, 2, 8, 3, 3, 8, 5, 4, 15, 7, 5, 8, 17, 5, 10, 9, 5, 17, 10, 6, 12, 14, 6, 13, 11, 6, 14, 13, 7, 15, 16, 7, 16, 17, 7, 17, 8},
	{0, 2, 4, 1, 9, 6, 2, 3, 5, 2, 5, 4, 6, 9, 10, 6, 10, 8, 7, 12, 14, 7, 13, 11, 7, 14, 13},
	{0, 1, 2, 1, 4, 9, 1, 9, 2, 2, 9, 17, 3, 11, 7, 4, 5, 6, 4, 6, 18, 4, 18, 9, 7, 11, 12, 7, 12, 10, 8, 14, 16, 8, 15, 13, 8, 16, 15, 9, 18, 19, 9, 19, 17},
	{0, 4, 3, 1, 7, 9, 2, 3, 5, 3, 4, 5, 6, 14, 11, 7, 8, 10, 7, 10, 9, 11, 14, 15, 11, 15, 13, 12, 17, 19, 12, 18, 16, 12, 19, 18},
	{0, 5, 10, 0, 10, 2, 1, 2, 3, 2, 10, 18, 2, 18, 3, 4, 12, 8, 5, 6, 7, 5, 7, 19, 5, 19, 10, 8, 12, 13, 8, 13, 11, 9, 15, 17, 9, 16, 14, 9, 17, 16, 10, 19, 20, 10, 20, 18},
	{0, 4, 6, 1, 2, 3, 2, 10, 3, 2, 17, 10, 3, 10, 8, 4, 5, 7, 4, 7, 6, 8, 10, 18, 8, 12, 11, 8, 18, 12, 9, 14, 16, 9, 15, 13, 9, 16, 15, 10, 17, 18},
	{0, 1, 3, 1, 6, 11, 1, 11, 3, 2, 4, 5, 3, 11, 12, 3, 12, 4, 4, 12, 5, 5, 12, 9, 6, 7, 8, 6, 8, 19, 6, 19, 11, 9, 12, 21, 9, 14, 13, 9, 21, 14, 10, 16, 18, 10, 17, 15, 10, 18, 17, 11, 19, 20, 11, 20, 21, 11, 21, 12},
	{0, 3, 2, 1, 5, 7, 2, 3, 18, 2, 11, 4, 2, 18, 11, 4, 11, 9, 5, 6, 8, 5, 8, 7, 9, 11, 19, 9, 13, 12, 9, 19, 13, 10, 15, 17, 10, 16, 14, 10, 17, 16, 11, 18, 19},
	{0, 3, 8, 0, 8, 1, 1, 8, 9, 1, 9, 2, 2, 9, 6, 3, 4, 5, 3, 5, 16, 3, 16, 8, 6, 9, 18, 6, 11, 10, 6, 18, 11, 7, 13, 15, 7, 14, 12, 7, 15, 14, 8, 16, 17, 8, 17, 18, 8, 18, 9},
	{0, 1, 7, 0, 7, 4, 1, 2, 8, 1, 8, 7, 2, 3, 12, 2, 12, 8, 4, 7, 9, 4, 9, 5, 5, 9, 16, 5, 16, 14, 6, 10, 13, 6, 13, 11, 6, 15, 17, 6, 17, 10, 7, 8, 10, 7, 10, 9, 8, 12, 10, 9, 10, 17, 9, 17, 16, 10, 12, 13},
	{0, 2, 3, 1, 7, 6, 2, 4, 10, 2, 10, 20, 2, 20, 3, 4, 5, 14, 4, 14, 10, 6, 7, 21, 6, 11, 8, 6, 21, 11, 8, 11, 18, 8, 18, 16, 9, 12, 15, 9, 15, 13, 9, 17, 19, 9, 19, 12, 10, 12, 22, 10, 14, 12, 10, 22, 20, 11, 12, 19, 11, 19, 18, 11, 21, 12, 12, 14, 15, 12, 21, 22},
	{0, 3, 1, 1, 3, 10, 1, 10, 7, 2, 5, 4, 3, 4, 11, 3, 11, 10, 4, 5, 11, 5, 6, 15, 5, 15, 11, 7, 10, 12, 7, 12, 8, 8, 12, 19, 8, 19, 17, 9, 13, 16, 9, 16, 14, 9, 18, 20, 9, 20, 13, 10, 11, 13, 10, 13, 12, 11, 15, 13, 12, 13, 20, 12, 20, 19, 13, 15, 16},
	{0, 6, 5, 1, 3, 2, 2, 3, 9, 2, 9, 19, 3, 4, 13, 3, 13, 9, 5, 6, 20, 5, 10, 7, 5, 20, 10, 7, 10, 17, 7, 17, 15, 8, 11, 14, 8, 14, 12, 8, 16, 18, 8, 18, 11, 9, 11, 21, 9, 13, 11, 9, 21, 19, 10, 11, 18, 10, 18, 17, 10, 20, 11, 11, 13, 14, 11, 20, 21},
	{0, 2, 7, 0, 7, 4, 1, 3, 2, 2, 3, 16, 2, 16, 7, 4, 7, 8, 4, 8, 5, 5, 8, 14, 5, 14, 12, 6, 9, 11, 6, 11, 10, 6, 13, 15, 6, 15, 9, 7, 9, 8, 7, 16, 17, 7, 17, 9, 8, 9, 15, 8, 15, 14, 9, 17, 11},
	{0, 3, 4, 1, 7, 6, 2, 5, 3, 3, 5, 4, 6, 7, 18, 6, 10, 8, 6, 18, 10, 8, 10, 16, 8, 16, 14, 9, 11, 13, 9, 13, 12, 9, 15, 17, 9, 17, 11, 10, 11, 17, 10, 17, 16, 10, 18, 11, 11, 18, 19, 11, 19, 20, 11, 20, 13},
	{0, 2, 1, 1, 2, 6, 1, 6, 3, 2, 15, 6, 3, 6, 7, 3, 7, 4, 4, 7, 13, 4, 13, 11, 5, 8, 10, 5, 10, 9, 5, 12, 14, 5, 14, 8, 6, 8, 7, 6, 15, 16, 6, 16, 8, 7, 8, 14, 7, 14, 13, 8, 16, 10},
	{0, 2, 1, 1, 2, 13, 1, 5, 3, 1, 13, 5, 3, 5, 11, 3, 11, 9, 4, 6, 8, 4, 8, 7, 4, 10, 12, 4, 12, 6, 5, 6, 12, 5, 12, 11, 5, 13, 6, 6, 13, 14, 6, 14, 15, 6, 15, 8},
	{0, 1, 6, 1, 2, 10, 1, 10, 6, 2, 3, 11, 2, 11, 10, 3, 4, 15, 3, 15, 11, 5, 7, 8, 6, 10, 7, 7, 10, 12, 7, 12, 8, 8, 12, 19, 8, 19, 17, 9, 13, 16, 9, 16, 14, 9, 18, 20, 9, 20, 13, 10, 11, 13, 10, 13, 12, 11, 15, 13, 12, 13, 20, 12, 20, 19, 13, 15, 16},
	{0, 1, 2, 1, 3, 9, 1, 9, 19, 1, 19, 2, 3, 4, 13, 3, 13, 9, 5, 6, 7, 6, 10, 7, 6, 20, 10, 7, 10, 17, 7, 17, 15, 8, 11, 14, 8, 14, 12, 8, 16, 18, 8, 18, 11, 9, 11, 21, 9, 13, 11, 9, 21, 19, 10, 11, 18, 10, 18, 17, 10, 20, 11, 11, 13, 14, 11, 20, 21},
	{0, 4, 2, 1, 2, 9, 2, 4, 13, 2, 13, 9, 3, 6, 5, 4, 5, 14, 4, 14, 13, 5, 6, 14, 6, 7, 18, 6, 18, 14, 8, 10, 11, 9, 13, 10, 10, 13, 15, 10, 15, 11, 11, 15, 22, 11, 22, 20, 12, 16, 19, 12, 19, 17, 12, 21, 23, 12, 23, 16, 13, 14, 16, 13, 16, 15, 14, 18, 16, 15, 16, 23, 15, 23, 22, 16, 18, 19},
	{0, 2, 1, 1, 2, 8, 1, 8, 18, 2, 3, 12, 2, 12, 8, 4, 5, 6, 5, 9, 6, 5, 19, 9, 6, 9, 16, 6, 16, 14, 7, 10, 13, 7, 13, 11, 7, 15, 17, 7, 17, 10, 8, 10, 20, 8, 12, 10, 8, 20, 18, 9, 10, 17, 9, 17, 16, 9, 19, 10, 10, 12, 13, 10, 19, 20},
	{0, 1, 6, 1, 3, 10, 1, 10, 6, 2, 4, 3, 3, 4, 19, 3, 19, 10, 5, 7, 8, 6, 10, 7, 7, 10, 11, 7, 11, 8, 8, 11, 17, 8, 17, 15, 9, 12, 14, 9, 14, 13, 9, 16, 18, 9, 18, 12, 10, 12, 11, 10, 19, 20, 10, 20, 12, 11, 12, 18, 11, 18, 17, 12, 20, 14},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 6, 7, 6, 9, 7, 6, 17, 9, 7, 9, 15, 7, 15, 13, 8, 10, 12, 8, 12, 11, 8, 14, 16, 8, 16, 10, 9, 10, 16, 9, 16, 15, 9, 17, 10, 10, 17, 18, 10, 18, 19, 10, 19, 12},
	{0, 3, 2, 1, 2, 5, 2, 3, 9, 2, 9, 5, 3, 18, 9, 4, 6, 7, 5, 9, 6, 6, 9, 10, 6, 10, 7, 7, 10, 16, 7, 16, 14, 8, 11, 13, 8, 13, 12, 8, 15, 17, 8, 17, 11, 9, 11, 10, 9, 18, 19, 9, 19, 11, 10, 11, 17, 10, 17, 16, 11, 19, 13},
	{0, 1, 2, 1, 4, 2, 1, 12, 4, 2, 4, 10, 2, 10, 8, 3, 5, 7, 3, 7, 6, 3, 9, 11, 3, 11, 5, 4, 5, 11, 4, 11, 10, 4, 12, 5, 5, 12, 13, 5, 13, 14, 5, 14, 7},
	{0, 2, 3, 1, 5, 2, 2, 5, 9, 2, 9, 3, 3, 9, 13, 4, 7, 6, 5, 6, 9, 6, 7, 10, 6, 10, 9, 7, 8, 10, 8, 11, 12, 8, 12, 15, 8, 15, 10, 9, 10, 15, 9, 14, 13, 9, 15, 14},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 7, 6, 6, 7, 9, 6, 9, 12, 7, 8, 9, 8, 10, 11, 8, 11, 13, 8, 13, 9, 9, 13, 12},
	{0, 6, 1, 1, 6, 10, 1, 10, 3, 2, 3, 4, 3, 10, 14, 3, 14, 4, 5, 8, 7, 6, 7, 10, 7, 8, 11, 7, 11, 10, 8, 9, 11, 9, 12, 13, 9, 13, 16, 9, 16, 11, 10, 11, 16, 10, 15, 14, 10, 16, 15},
	{0, 1, 2, 1, 8, 2, 1, 13, 8, 2, 8, 10, 2, 10, 3, 4, 6, 5, 5, 6, 9, 5, 9, 14, 6, 7, 9, 7, 11, 12, 7, 12, 16, 7, 16, 9, 8, 13, 15, 8, 15, 10, 9, 16, 14},
	{0, 2, 4, 1, 9, 2, 2, 9, 13, 2, 13, 4, 3, 5, 6, 4, 13, 14, 4, 14, 5, 5, 14, 6, 6, 14, 16, 6, 16, 7, 8, 11, 10, 9, 10, 13, 10, 11, 15, 10, 15, 13, 11, 12, 15, 12, 17, 18, 12, 18, 21, 12, 21, 15, 13, 15, 21, 13, 19, 20, 13, 20, 14, 13, 21, 19, 14, 20, 16},
	{0, 2, 1, 1, 2, 14, 1, 9, 3, 1, 14, 9, 3, 9, 11, 3, 11, 4, 5, 7, 6, 6, 7, 10, 6, 10, 15, 7, 8, 10, 8, 12, 13, 8, 13, 17, 8, 17, 10, 9, 14, 16, 9, 16, 11, 10, 17, 15},
	{0, 6, 1, 1, 6, 10, 1, 10, 2, 2, 10, 11, 2, 11, 3, 3, 11, 13, 3, 13, 4, 5, 8, 7, 6, 7, 10, 7, 8, 12, 7, 12, 10, 8, 9, 12, 9, 14, 15, 9, 15, 18, 9, 18, 12, 10, 12, 18, 10, 16, 17, 10, 17, 11, 10, 18, 16, 11, 17, 13},
	{0, 1, 2, 1, 3, 6, 1, 6, 2, 2, 6, 10, 3, 4, 7, 3, 7, 6, 4, 5, 7, 5, 8, 9, 5, 9, 12, 5, 12, 7, 6, 7, 12, 6, 11, 10, 6, 12, 11},
	{0, 4, 3, 1, 6, 7, 2, 3, 5, 3, 4, 5, 6, 8, 10, 6, 10, 13, 6, 13, 7, 8, 9, 10, 9, 11, 12, 9, 12, 14, 9, 14, 10, 10, 14, 13},
	{0, 4, 7, 0, 7, 2, 1, 2, 3, 2, 7, 11, 2, 11, 3, 4, 5, 8, 4, 8, 7, 5, 6, 8, 6, 9, 10, 6, 10, 13, 6, 13, 8, 7, 8, 13, 7, 12, 11, 7, 13, 12},
	{0, 5, 6, 1, 2, 3, 2, 9, 3, 2, 14, 9, 3, 9, 11, 3, 11, 4, 5, 7, 10, 5, 10, 15, 5, 15, 6, 7, 8, 10, 8, 12, 13, 8, 13, 17, 8, 17, 10, 9, 14, 16, 9, 16, 11, 10, 17, 15},
	{0, 1, 3, 1, 7, 10, 1, 10, 3, 2, 4, 5, 3, 10, 11, 3, 11, 4, 4, 11, 5, 5, 11, 13, 5, 13, 6, 7, 8, 12, 7, 12, 10, 8, 9, 12, 9, 14, 15, 9, 15, 18, 9, 18, 12, 10, 12, 18, 10, 16, 17, 10, 17, 11, 10, 18, 16, 11, 17, 13},
	{0, 3, 2, 1, 6, 7, 2, 3, 15, 2, 10, 4, 2, 15, 10, 4, 10, 12, 4, 12, 5, 6, 8, 11, 6, 11, 16, 6, 16, 7, 8, 9, 11, 9, 13, 14, 9, 14, 18, 9, 18, 11, 10, 15, 17, 10, 17, 12, 11, 18, 16},
	{0, 4, 7, 0, 7, 1, 1, 7, 8, 1, 8, 2, 2, 8, 10, 2, 10, 3, 4, 5, 9, 4, 9, 7, 5, 6, 9, 6, 11, 12, 6, 12, 15, 6, 15, 9, 7, 9, 15, 7, 13, 14, 7, 14, 8, 7, 15, 13, 8, 14, 10},
	{0, 1, 8, 0, 8, 3, 1, 2, 9, 1, 9, 8, 2, 6, 9, 3, 5, 4, 3, 8, 13, 3, 13, 5, 6, 7, 10, 6, 10, 9, 7, 11, 12, 7, 12, 10, 8, 9, 10, 8, 10, 14, 8, 14, 13, 10, 12, 14},
	{0, 2, 3, 1, 7, 5, 2, 4, 11, 2, 11, 15, 2, 15, 3, 4, 9, 11, 5, 7, 8, 5, 8, 6, 9, 10, 12, 9, 12, 11, 10, 13, 14, 10, 14, 12, 11, 12, 16, 11, 16, 15, 12, 14, 17, 12, 17, 16},
	{0, 3, 1, 1, 3, 11, 1, 11, 6, 2, 5, 4, 3, 4, 12, 3, 12, 11, 4, 5, 12, 5, 9, 12, 6, 8, 7, 6, 11, 16, 6, 16, 8, 9, 10, 13, 9, 13, 12, 10, 14, 15, 10, 15, 13, 11, 12, 13, 11, 13, 17, 11, 17, 16, 13, 15, 17},
	{0, 6, 4, 1, 3, 2, 2, 3, 10, 2, 10, 14, 3, 8, 10, 4, 6, 7, 4, 7, 5, 8, 9, 11, 8, 11, 10, 9, 12, 13, 9, 13, 11, 10, 11, 15, 10, 15, 14, 11, 13, 16, 11, 16, 15},
	{0, 2, 10, 0, 10, 5, 1, 3, 2, 2, 3, 15, 2, 15, 10, 4, 8, 12, 5, 7, 6, 5, 10, 16, 5, 16, 7, 8, 9, 11, 8, 11, 17, 8, 17, 12, 9, 13, 14, 9, 14, 11, 10, 11, 18, 10, 15, 17, 10, 17, 11, 10, 18, 16, 11, 14, 18},
	{0, 3, 4, 1, 9, 7, 2, 5, 3, 3, 5, 4, 6, 11, 14, 7, 9, 10, 7, 10, 8, 11, 12, 13, 11, 13, 18, 11, 18, 14, 12, 15, 16, 12, 16, 13, 13, 16, 19, 13, 17, 18, 13, 19, 17},
	{0, 2, 1, 1, 2, 9, 1, 9, 4, 2, 14, 9, 3, 7, 11, 4, 6, 5, 4, 9, 15, 4, 15, 6, 7, 8, 10, 7, 10, 16, 7, 16, 11, 8, 12, 13, 8, 13, 10, 9, 10, 17, 9, 14, 16, 9, 16, 10, 9, 17, 15, 10, 13, 17},
	{0, 4, 2, 1, 6, 9, 2, 4, 5, 2, 5, 3, 6, 7, 8, 6, 8, 13, 6, 13, 9, 7, 10, 11, 7, 11, 8, 8, 11, 14, 8, 12, 13, 8, 14, 12},
	{0, 1, 4, 1, 2, 7, 1, 7, 4, 2, 3, 8, 2, 8, 7, 3, 5, 8, 4, 7, 12, 5, 6, 9, 5, 9, 8, 6, 10, 11, 6, 11, 9, 7, 8, 9, 7, 9, 13, 7, 13, 12, 9, 11, 13},
	{0, 1, 2, 1, 3, 6, 1, 6, 10, 1, 10, 2, 3, 4, 6, 4, 5, 7, 4, 7, 6, 5, 8, 9, 5, 9, 7, 6, 7, 11, 6, 11, 10, 7, 9, 12, 7, 12, 11},
	{0, 4, 2, 1, 2, 7, 2, 4, 10, 2, 10, 7, 3, 6, 5, 4, 5, 11, 4, 11, 10, 5, 6, 11, 6, 8, 11, 7, 10, 15, 8, 9, 12, 8, 12, 11, 9, 13, 14, 9, 14, 12, 10, 11, 12, 10, 12, 16, 10, 16, 15, 12, 14, 16},
	{0, 2, 1, 1, 2, 5, 1, 5, 9, 2, 3, 5, 3, 4, 6, 3, 6, 5, 4, 7, 8, 4, 8, 6, 5, 6, 10, 5, 10, 9, 6, 8, 11, 6, 11, 10},
	{0, 1, 6, 1, 3, 9, 1, 9, 6, 2, 4, 3, 3, 4, 14, 3, 14, 9, 5, 7, 11, 6, 9, 15, 7, 8, 10, 7, 10, 16, 7, 16, 11, 8, 12, 13, 8, 13, 10, 9, 10, 17, 9, 14, 16, 9, 16, 10, 9, 17, 15, 10, 13, 17},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 6, 9, 6, 7, 8, 6, 8, 13, 6, 13, 9, 7, 10, 11, 7, 11, 8, 8, 11, 14, 8, 12, 13, 8, 14, 12},
	{0, 3, 2, 1, 2, 5, 2, 3, 8, 2, 8, 5, 3, 13, 8, 4, 6, 10, 5, 8, 14, 6, 7, 9, 6, 9, 15, 6, 15, 10, 7, 11, 12, 7, 12, 9, 8, 9, 16, 8, 13, 15, 8, 15, 9, 8, 16, 14, 9, 12, 16},
	{0, 1, 4, 1, 2, 3, 1, 3, 8, 1, 8, 4, 2, 5, 6, 2, 6, 3, 3, 6, 9, 3, 7, 8, 3, 9, 7},
	{0, 8, 3, 1, 4, 2, 2, 4, 6, 2, 6, 12, 3, 8, 9, 3, 9, 7, 4, 5, 6, 5, 10, 11, 5, 11, 13, 5, 13, 6, 6, 13, 12},
	{0, 2, 3, 1, 6, 2, 2, 6, 11, 2, 11, 3, 3, 11, 18, 4, 14, 8, 5, 9, 7, 6, 7, 11, 7, 9, 12, 7, 12, 11, 8, 14, 15, 8, 15, 13, 9, 10, 12, 10, 16, 17, 10, 17, 20, 10, 20, 12, 11, 12, 20, 11, 19, 18, 11, 20, 19},
	{0, 3, 2, 1, 2, 4, 2, 3, 4, 5, 13, 8, 6, 9, 7, 7, 9, 11, 7, 11, 17, 8, 13, 14, 8, 14, 12, 9, 10, 11, 10, 15, 16, 10, 16, 18, 10, 18, 11, 11, 18, 17},
	{0, 7, 1, 1, 7, 12, 1, 12, 3, 2, 3, 4, 3, 12, 19, 3, 19, 4, 5, 15, 9, 6, 10, 8, 7, 8, 12, 8, 10, 13, 8, 13, 12, 9, 15, 16, 9, 16, 14, 10, 11, 13, 11, 17, 18, 11, 18, 21, 11, 21, 13, 12, 13, 21, 12, 20, 19, 12, 21, 20},
	{0, 1, 2, 1, 8, 2, 1, 14, 8, 2, 8, 5, 3, 6, 4, 4, 6, 9, 4, 9, 15, 5, 8, 16, 5, 11, 10, 5, 16, 11, 6, 7, 9, 7, 12, 13, 7, 13, 17, 7, 17, 9, 8, 14, 16, 9, 17, 15},
	{0, 2, 4, 1, 8, 2, 2, 8, 13, 2, 13, 4, 3, 5, 6, 4, 13, 14, 4, 14, 5, 5, 14, 6, 6, 14, 10, 7, 11, 9, 8, 9, 13, 9, 11, 15, 9, 15, 13, 10, 14, 21, 10, 17, 16, 10, 21, 17, 11, 12, 15, 12, 18, 19, 12, 19, 22, 12, 22, 15, 13, 15, 22, 13, 20, 21, 13, 21, 14, 13, 22, 20},
	{0, 2, 1, 1, 2, 15, 1, 9, 3, 1, 15, 9, 3, 9, 6, 4, 7, 5, 5, 7, 10, 5, 10, 16, 6, 9, 17, 6, 12, 11, 6, 17, 12, 7, 8, 10, 8, 13, 14, 8, 14, 18, 8, 18, 10, 9, 15, 17, 10, 18, 16},
	{0, 5, 1, 1, 5, 10, 1, 10, 2, 2, 10, 11, 2, 11, 3, 3, 11, 7, 4, 8, 6, 5, 6, 10, 6, 8, 12, 6, 12, 10, 7, 11, 18, 7, 14, 13, 7, 18, 14, 8, 9, 12, 9, 15, 16, 9, 16, 19, 9, 19, 12, 10, 12, 19, 10, 17, 18, 10, 18, 11, 10, 19, 17},
	{0, 2, 3, 1, 9, 4, 2, 5, 7, 2, 7, 13, 2, 13, 3, 4, 9, 10, 4, 10, 8, 5, 6, 7, 6, 11, 12, 6, 12, 14, 6, 14, 7, 7, 14, 13},
	{0, 1, 2, 1, 4, 8, 1, 8, 2, 2, 8, 15, 3, 11, 5, 4, 6, 9, 4, 9, 8, 5, 11, 12, 5, 12, 10, 6, 7, 9, 7, 13, 14, 7, 14, 17, 7, 17, 9, 8, 9, 17, 8, 16, 15, 8, 17, 16},
	{0, 4, 3, 1, 7, 8, 2, 3, 5, 3, 4, 5, 6, 14, 9, 7, 10, 12, 7, 12, 18, 7, 18, 8, 9, 14, 15, 9, 15, 13, 10, 11, 12, 11, 16, 17, 11, 17, 19, 11, 19, 12, 12, 19, 18},
	{0, 5, 9, 0, 9, 2, 1, 2, 3, 2, 9, 16, 2, 16, 3, 4, 12, 6, 5, 7, 10, 5, 10, 9, 6, 12, 13, 6, 13, 11, 7, 8, 10, 8, 14, 15, 8, 15, 18, 8, 18, 10, 9, 10, 18, 9, 17, 16, 9, 18, 17},
	{0, 4, 5, 1, 2, 3, 2, 9, 3, 2, 15, 9, 3, 9, 6, 4, 7, 10, 4, 10, 16, 4, 16, 5, 6, 9, 17, 6, 12, 11, 6, 17, 12, 7, 8, 10, 8, 13, 14, 8, 14, 18, 8, 18, 10, 9, 15, 17, 10, 18, 16},
	{0, 1, 3, 1, 6, 10, 1, 10, 3, 2, 4, 5, 3, 10, 11, 3, 11, 4, 4, 11, 5, 5, 11, 7, 6, 8, 12, 6, 12, 10, 7, 11, 18, 7, 14, 13, 7, 18, 14, 8, 9, 12, 9, 15, 16, 9, 16, 19, 9, 19, 12, 10, 12, 19, 10, 17, 18, 10, 18, 11, 10, 19, 17},
	{0, 3, 2, 1, 5, 6, 2, 3, 16, 2, 10, 4, 2, 16, 10, 4, 10, 7, 5, 8, 11, 5, 11, 17, 5, 17, 6, 7, 10, 18, 7, 13, 12, 7, 18, 13, 8, 9, 11, 9, 14, 15, 9, 15, 19, 9, 19, 11, 10, 16, 18, 11, 19, 17},
	{0, 3, 7, 0, 7, 1, 1, 7, 8, 1, 8, 2, 2, 8, 4, 3, 5, 9, 3, 9, 7, 4, 8, 15, 4, 11, 10, 4, 15, 11, 5, 6, 9, 6, 12, 13, 6, 13, 16, 6, 16, 9, 7, 9, 16, 7, 14, 15, 7, 15, 8, 7, 16, 14},
	{0, 1, 8, 0, 8, 4, 1, 2, 9, 1, 9, 8, 2, 3, 12, 2, 12, 9, 4, 6, 5, 4, 8, 16, 4, 16, 6, 7, 10, 13, 7, 13, 11, 7, 14, 15, 7, 15, 10, 8, 9, 10, 8, 10, 17, 8, 17, 16, 9, 12, 10, 10, 12, 13, 10, 15, 17},
	{0, 2, 3, 1, 8, 6, 2, 4, 11, 2, 11, 18, 2, 18, 3, 4, 5, 14, 4, 14, 11, 6, 8, 9, 6, 9, 7, 10, 12, 15, 10, 15, 13, 10, 16, 17, 10, 17, 12, 11, 12, 19, 11, 14, 12, 11, 19, 18, 12, 14, 15, 12, 17, 20, 12, 20, 19},
	{0, 3, 1, 1, 3, 11, 1, 11, 7, 2, 5, 4, 3, 4, 12, 3, 12, 11, 4, 5, 12, 5, 6, 15, 5, 15, 12, 7, 9, 8, 7, 11, 19, 7, 19, 9, 10, 13, 16, 10, 16, 14, 10, 17, 18, 10, 18, 13, 11, 12, 13, 11, 13, 20, 11, 20, 19, 12, 15, 13, 13, 15, 16, 13, 18, 20},
	{0, 7, 5, 1, 3, 2, 2, 3, 10, 2, 10, 17, 3, 4, 13, 3, 13, 10, 5, 7, 8, 5, 8, 6, 9, 11, 14, 9, 14, 12, 9, 15, 16, 9, 16, 11, 10, 11, 18, 10, 13, 11, 10, 18, 17, 11, 13, 14, 11, 16, 19, 11, 19, 18},
	{0, 2, 8, 0, 8, 4, 1, 3, 2, 2, 3, 14, 2, 14, 8, 4, 6, 5, 4, 8, 15, 4, 15, 6, 7, 9, 11, 7, 11, 10, 7, 12, 13, 7, 13, 9, 8, 9, 17, 8, 14, 16, 8, 16, 9, 8, 17, 15, 9, 13, 17, 9, 16, 11},
	{0, 3, 4, 1, 8, 6, 2, 5, 3, 3, 5, 4, 6, 8, 9, 6, 9, 7, 10, 11, 13, 10, 13, 12, 10, 14, 15, 10, 15, 11, 11, 15, 18, 11, 16, 17, 11, 17, 13, 11, 18, 16},
	{0, 2, 1, 1, 2, 7, 1, 7, 3, 2, 13, 7, 3, 5, 4, 3, 7, 14, 3, 14, 5, 6, 8, 10, 6, 10, 9, 6, 11, 12, 6, 12, 8, 7, 8, 16, 7, 13, 15, 7, 15, 8, 7, 16, 14, 8, 12, 16, 8, 15, 10},
	{0, 3, 1, 1, 3, 4, 1, 4, 2, 5, 6, 8, 5, 8, 7, 5, 9, 10, 5, 10, 6, 6, 10, 13, 6, 11, 12, 6, 12, 8, 6, 13, 11},
	{0, 1, 5, 1, 2, 7, 1, 7, 5, 2, 3, 8, 2, 8, 7, 3, 4, 11, 3, 11, 8, 5, 7, 15, 6, 9, 12, 6, 12, 10, 6, 13, 14, 6, 14, 9, 7, 8, 9, 7, 9, 16, 7, 16, 15, 8, 11, 9, 9, 11, 12, 9, 14, 16},
	{0, 1, 2, 1, 3, 6, 1, 6, 13, 1, 13, 2, 3, 4, 9, 3, 9, 6, 5, 7, 10, 5, 10, 8, 5, 11, 12, 5, 12, 7, 6, 7, 14, 6, 9, 7, 6, 14, 13, 7, 9, 10, 7, 12, 15, 7, 15, 14},
	{0, 4, 2, 1, 2, 8, 2, 4, 10, 2, 10, 8, 3, 6, 5, 4, 5, 11, 4, 11, 10, 5, 6, 11, 6, 7, 14, 6, 14, 11, 8, 10, 18, 9, 12, 15, 9, 15, 13, 9, 16, 17, 9, 17, 12, 10, 11, 12, 10, 12, 19, 10, 19, 18, 11, 14, 12, 12, 14, 15, 12, 17, 19},
	{0, 2, 1, 1, 2, 5, 1, 5, 12, 2, 3, 8, 2, 8, 5, 4, 6, 9, 4, 9, 7, 4, 10, 11, 4, 11, 6, 5, 6, 13, 5, 8, 6, 5, 13, 12, 6, 8, 9, 6, 11, 14, 6, 14, 13},
	{0, 1, 5, 1, 3, 7, 1, 7, 5, 2, 4, 3, 3, 4, 13, 3, 13, 7, 5, 7, 14, 6, 8, 10, 6, 10, 9, 6, 11, 12, 6, 12, 8, 7, 8, 16, 7, 13, 15, 7, 15, 8, 7, 16, 14, 8, 12, 16, 8, 15, 10},
	{0, 2, 3, 1, 4, 2, 2, 4, 3, 5, 6, 8, 5, 8, 7, 5, 9, 10, 5, 10, 6, 6, 10, 13, 6, 11, 12, 6, 12, 8, 6, 13, 11},
	{0, 3, 2, 1, 2, 4, 2, 3, 6, 2, 6, 4, 3, 12, 6, 4, 6, 13, 5, 7, 9, 5, 9, 8, 5, 10, 11, 5, 11, 7, 6, 7, 15, 6, 12, 14, 6, 14, 7, 6, 15, 13, 7, 11, 15, 7, 14, 9},
	{0, 1, 3, 0, 3, 2, 0, 4, 5, 0, 5, 1, 1, 5, 8, 1, 6, 7, 1, 7, 3, 1, 8, 6},
}

// transitionVertexData: por caso, um vértice por par de extremos do
// estêncil cruzados pela superfície (nibble alto = A, baixo = B).
var transitionVertexData = [512][]uint8{
	{},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x49, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x49, 0x9A, 0x9B, 0x9C},
	{0x12, 0x1A, 0x24, 0x25, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x03, 0x34, 0x36, 0x39, 0x3B},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x49, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x49, 0x9A, 0x9B, 0x9C},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x25, 0x45, 0x58, 0x5A, 0x5C},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x58, 0x5A, 0x5C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x12, 0x1A, 0x24, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x58, 0x5A, 0x5C},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x58, 0x5A, 0x5C},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x03, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x36, 0x3B, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x36, 0x3B, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x34, 0x39, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x12, 0x1A, 0x24, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x25, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x12, 0x1A, 0x24, 0x25, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x25, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x12, 0x1A, 0x24, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x34, 0x39, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x36, 0x3B, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x36, 0x3B, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x34, 0x39, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x12, 0x1A, 0x24, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x25, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4A, 0x4B, 0x58, 0x5C, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x4B, 0x58, 0x5A, 0x5C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x25, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4C, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4C, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x48, 0x4A, 0x4C, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x48, 0x49, 0x4A, 0x4C, 0x78, 0x7C, 0x9B, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x03, 0x34, 0x39, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9C, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x4A, 0x4B, 0x5A, 0x78, 0x7C, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x49, 0x4B, 0x78, 0x7C, 0x9A, 0x9C, 0xBC},
	{0x36, 0x3B, 0x46, 0x47, 0x4B, 0x78, 0x7C, 0x9B, 0xBC},
	{0x36, 0x3B, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x34, 0x39, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x47, 0x49, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x12, 0x1A, 0x24, 0x45, 0x47, 0x4A, 0x58, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x47, 0x49, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x25, 0x45, 0x47, 0x58, 0x5A, 0x5C, 0x67, 0x78, 0x7B, 0x7C},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x48, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x67, 0x78, 0x7B, 0x7C},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x47, 0x49, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9B, 0x9C, 0xAC},
	{0x12, 0x1A, 0x24, 0x25, 0x47, 0x4A, 0x5A, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x47, 0x49, 0x67, 0x78, 0x7B, 0x7C, 0x9A, 0x9B, 0x9C},
	{0x47, 0x67, 0x78, 0x7B, 0x7C},
	{0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4C, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x47, 0x48, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x4A, 0x4B, 0x58, 0x5C, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x49, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x4B, 0x58, 0x5A, 0x5C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x25, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4C, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4C, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x47, 0x48, 0x4A, 0x4C, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x47, 0x48, 0x49, 0x4A, 0x4C, 0x67, 0x7B, 0x9B, 0xBC},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x03, 0x34, 0x39, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9C, 0xAC, 0xBC},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x4A, 0x4B, 0x5A, 0x67, 0x7B, 0x9A, 0x9B, 0xAC, 0xBC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x49, 0x4B, 0x67, 0x7B, 0x9A, 0x9C, 0xBC},
	{0x36, 0x3B, 0x46, 0x4B, 0x67, 0x7B, 0x9B, 0xBC},
	{0x36, 0x3B, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x36, 0x3B, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x12, 0x1A, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x36, 0x3B, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x36, 0x39, 0x3B, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x03, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x58, 0x5C, 0x9A, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x39, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x58, 0x5A, 0x5C},
	{0x04, 0x14, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x58, 0x5A, 0x5C},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x36, 0x3B, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x45, 0x58, 0x5A, 0x5C},
	{0x03, 0x04, 0x14, 0x24, 0x39, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x39, 0x45, 0x49, 0x4A, 0x58, 0x5C, 0x9B, 0x9C, 0xAC},
	{0x12, 0x1A, 0x24, 0x45, 0x4A, 0x58, 0x5C, 0x9A, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x39, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x45, 0x58, 0x5A, 0x5C},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x39, 0x45, 0x49, 0x58, 0x5A, 0x5C, 0x9A, 0x9B, 0x9C},
	{0x25, 0x45, 0x58, 0x5A, 0x5C},
	{0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x04, 0x19, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x01, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x25, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x12, 0x1A, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x01, 0x14, 0x19, 0x24, 0x36, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x03, 0x04, 0x14, 0x24, 0x36, 0x39, 0x3B, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x03, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x04, 0x19, 0x25, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x25, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4B, 0x4C, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x25, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4B, 0x4C, 0x5A, 0x9A, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x34, 0x39, 0x45, 0x46, 0x47, 0x48, 0x4A, 0x4B, 0x4C, 0x9A, 0x9B, 0x9C},
	{0x04, 0x14, 0x24, 0x34, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C},
	{0x04, 0x14, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x03, 0x14, 0x19, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x01, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x3B, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x03, 0x12, 0x1A, 0x24, 0x25, 0x34, 0x36, 0x39, 0x3B, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x04, 0x12, 0x14, 0x1A, 0x34, 0x36, 0x3B, 0x49, 0x9A, 0x9B, 0x9C},
	{0x01, 0x03, 0x12, 0x14, 0x19, 0x1A, 0x34, 0x36, 0x39, 0x3B},
	{0x01, 0x04, 0x19, 0x34, 0x36, 0x3B, 0x49, 0x9A, 0x9B, 0x9C},
	{0x03, 0x34, 0x36, 0x39, 0x3B},
	{0x03, 0x04, 0x14, 0x24, 0x25, 0x39, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x01, 0x14, 0x19, 0x24, 0x25, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x01, 0x03, 0x04, 0x12, 0x19, 0x1A, 0x24, 0x25, 0x39, 0x49, 0x4A, 0x5A, 0x9B, 0x9C, 0xAC},
	{0x12, 0x1A, 0x24, 0x25, 0x4A, 0x5A, 0x9A, 0xAC},
	{0x03, 0x04, 0x12, 0x14, 0x1A, 0x39, 0x49, 0x9A, 0x9B, 0x9C},
	{0x01, 0x12, 0x14, 0x19, 0x1A},
	{0x01, 0x03, 0x04, 0x19, 0x39, 0x49, 0x9A, 0x9B, 0x9C},
	{},
}
