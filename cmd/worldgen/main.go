package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/annel0/mmo-worldgen/internal/config"
	"github.com/annel0/mmo-worldgen/internal/logging"
	"github.com/annel0/mmo-worldgen/internal/vec"
	"github.com/annel0/mmo-worldgen/internal/world"
	"github.com/annel0/mmo-worldgen/internal/world/palette"
	"github.com/annel0/mmo-worldgen/internal/world/subbiome/catalog"
	"github.com/google/uuid"
)

func main() {
	var (
		configPath  = flag.String("config", "", "путь к YAML конфигурации")
		seed        = flag.Int64("seed", 0, "сид мира (перекрывает конфиг)")
		radius      = flag.Int("radius", 2, "радиус региона в чанках")
		workers     = flag.Int("workers", 0, "число воркеров (перекрывает конфиг)")
		metricsOn   = flag.Bool("metrics", false, "поднять Prometheus /metrics")
		dumpSlice   = flag.Bool("dump", false, "напечатать вертикальный срез центрального чанка")
		forceBiome  = flag.String("subbiome", "", "генерировать только указанный саббиом")
	)
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("worldgen"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	runID := uuid.New().String()[:8]
	logging.Info("🌍 Запуск генератора мира, run=%s", runID)

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	worldSeed := cfg.World.GetSeed()
	if *seed != 0 {
		worldSeed = *seed
	}
	workerCount := cfg.World.GetWorkers()
	if *workers > 0 {
		workerCount = *workers
	}

	logging.Info("📡 Параметры: seed=%d, высота=%d, уровень воды=%d, шум=%s, воркеров=%d",
		worldSeed, cfg.World.GetHeight(), cfg.World.GetFillLevel(), cfg.Noise.GetKind(), workerCount)

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===

	// Палитра и каталог саббиомов
	logging.Debug("Сборка каталога саббиомов...")
	pal := palette.Default()
	cat, err := catalog.Default(pal)
	if err != nil {
		// Диагностика авторинга: сломанные саббиомы не регистрируются,
		// остальные продолжают работать
		logging.Error("⚠️  Ошибки авторинга саббиомов: %v", err)
	}
	logging.Info("📚 Каталог собран: %d саббиомов (%s)", cat.Len(), strings.Join(cat.Names(), ", "))
	for _, name := range cat.Names() {
		def, _ := cat.Get(name)
		logging.Debug("Саббиом %s: амплитуда=%.1f, частота=%.3f, сдвиг=%d, ширина=%d, декораций=%d",
			name, def.Amplitude(), def.Frequency(), def.Offset(), def.MinWidth(), len(def.Decorations()))
		if ref := def.Structure(); ref != nil {
			logging.Debug("Саббиом %s: генератор структур %q", name, ref.Name)
		}
	}

	// Генератор
	gen, err := world.NewGenerator(world.GeneratorParams{
		Seed:         worldSeed,
		Height:       cfg.World.GetHeight(),
		FillLevel:    cfg.World.GetFillLevel(),
		BaseHeight:   cfg.World.GetBaseHeight(),
		NoiseKind:    cfg.Noise.GetKind(),
		NoiseAlpha:   cfg.Noise.GetAlpha(),
		NoiseBeta:    cfg.Noise.GetBeta(),
		NoiseOctaves: cfg.Noise.GetOctaves(),
	}, pal, cat)
	if err != nil {
		logging.Error("❌ Ошибка создания генератора: %v", err)
		log.Fatalf("❌ Ошибка создания генератора: %v", err)
	}

	if *forceBiome != "" {
		if _, ok := cat.Get(*forceBiome); !ok {
			log.Fatalf("❌ Саббиом %q не найден в каталоге", *forceBiome)
		}
		gen.SetPicker(singlePicker(*forceBiome))
		logging.Info("🔒 Пикер зафиксирован на саббиоме %q", *forceBiome)
	}

	// Метрики
	if *metricsOn {
		m := world.NewMetrics()
		gen.SetMetrics(m)
		m.StartHTTP(fmt.Sprintf(":%d", cfg.Metrics.GetPort()))
	}

	// === ГЕНЕРАЦИЯ ===

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info("📡 Получен сигнал %v, остановка генерации...", sig)
		cancel()
	}()

	from := vec.Vec2{X: -*radius, Y: -*radius}
	to := vec.Vec2{X: *radius, Y: *radius}
	total := (2*(*radius) + 1) * (2*(*radius) + 1)
	logging.Info("⛏️  Генерация региона %v..%v (%d чанков)...", from, to, total)

	start := time.Now()
	chunks, err := gen.GenerateRegion(ctx, from, to, workerCount)
	if err != nil {
		logging.Error("❌ Генерация прервана: %v", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	logging.Info("✅ Сгенерировано %d чанков за %v (%.1f чанков/с)",
		len(chunks), elapsed.Round(time.Millisecond), float64(len(chunks))/elapsed.Seconds())

	if *dumpSlice {
		for _, chunk := range chunks {
			if chunk.Coords == (vec.Vec2{X: 0, Y: 0}) {
				printSlice(chunk, pal)
				break
			}
		}
	}

	logging.Info("👋 Готово, run=%s", runID)
}

// singlePicker пикер из одного саббиома
type singlePicker string

func (s singlePicker) Pick(pos vec.Vec2) string { return string(s) }

// printSlice печатает вертикальный срез чанка по z=8: по строке на
// высоту, сверху вниз
func printSlice(chunk *world.Chunk, pal palette.Palette) {
	const z = world.ChunkSize / 2

	top := 0
	for x := 0; x < world.ChunkSize; x++ {
		if h := chunk.SurfaceHeight(vec.Vec2{X: x, Y: z}); h > top {
			top = h
		}
	}
	top += 3
	if top >= chunk.Height {
		top = chunk.Height - 1
	}

	fmt.Printf("Срез чанка %v по z=%d:\n", chunk.Coords, z)
	for y := top; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < world.ChunkSize; x++ {
			pos := vec.Vec3{X: x, Y: y, Z: z}
			sb.WriteByte(voxelChar(pal, chunk.GetBlock(pos), chunk.GetFluid(pos)))
		}
		fmt.Printf("%4d |%s|\n", y, sb.String())
	}
}

// voxelChar подбирает символ для вокселя среза
func voxelChar(pal palette.Palette, b palette.BlockID, f palette.FluidID) byte {
	if b == pal.Air {
		if f == pal.Water {
			return '~'
		}
		return ' '
	}
	switch b {
	case pal.Grass:
		return '"'
	case pal.Dirt:
		return '#'
	case pal.Sand:
		return ':'
	case pal.Mud:
		return 'm'
	case pal.Clay:
		return 'c'
	case pal.Gravel:
		return '%'
	case pal.Snow:
		return '*'
	case pal.PackedSnow:
		return '+'
	case pal.Ice:
		return '/'
	case pal.Permafrost:
		return '='
	case pal.Granite, pal.Limestone, pal.Basalt, pal.Sandstone:
		return '@'
	default:
		return '?'
	}
}
