package dsp

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

const (
	methodSox      = "sox"
	methodResample = "resample"
)

func soxAvailable() bool {
	_, err := exec.LookPath("sox")
	return err == nil
}

// soxShifter — истинный питч-сдвиг внешней утилитой sox: высота тона
// меняется, длительность сохраняется. Поток прогоняется через пару
// временных wav-файлов, как того требует интерфейс sox.
type soxShifter struct{}

func (soxShifter) name() string { return methodSox }

func (soxShifter) shift(ctx context.Context, s beep.Streamer, f beep.Format, factor float64) (beep.Streamer, beep.Format, error) {
	in, err := os.CreateTemp("", "reminder-in-*.wav")
	if err != nil {
		return nil, beep.Format{}, err
	}
	defer os.Remove(in.Name())

	out, err := os.CreateTemp("", "reminder-out-*.wav")
	if err != nil {
		in.Close()
		return nil, beep.Format{}, err
	}
	out.Close()
	defer os.Remove(out.Name())

	// wav-кодек beep пишет 16-битные сэмплы
	enc := beep.Format{SampleRate: f.SampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(in, s, enc); err != nil {
		in.Close()
		return nil, beep.Format{}, err
	}
	if err := in.Close(); err != nil {
		return nil, beep.Format{}, err
	}

	// sox принимает сдвиг в сотых полутона: (factor-1)*12 полутонов
	cents := int(math.Round((factor - 1.0) * 1200))
	cmd := exec.CommandContext(ctx, "sox", in.Name(), out.Name(), "pitch", strconv.Itoa(cents))
	if b, err := cmd.CombinedOutput(); err != nil {
		return nil, beep.Format{}, fmt.Errorf("sox pitch: %w: %s", err, b)
	}

	res, err := os.Open(out.Name())
	if err != nil {
		return nil, beep.Format{}, err
	}
	streamer, rf, err := wav.Decode(res)
	if err != nil {
		res.Close()
		return nil, beep.Format{}, err
	}
	// res закроется вместе со streamer
	return streamer, rf, nil
}

// resampleShifter — деградированный режим: сэмплы объявляются записанными
// на частоте rate*factor, итоговая нормализация к 44100 Гц делает звук выше
// и быстрее (или ниже и медленнее). Длительность меняется как побочный эффект.
type resampleShifter struct{}

func (resampleShifter) name() string { return methodResample }

func (resampleShifter) shift(_ context.Context, s beep.Streamer, f beep.Format, factor float64) (beep.Streamer, beep.Format, error) {
	f.SampleRate = beep.SampleRate(math.Round(float64(f.SampleRate) * factor))
	return s, f, nil
}
