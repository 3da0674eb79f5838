// Package factory はテスト用のフィクスチャ（User / Todo / Item）を生成します。
//
// 各テンプレートはフィールドごとのデフォルト生成ルールを持ち、
// 呼び出し側はオプションで任意のフィールドを上書きできます。
// 乱数源は gofakeit.Faker として注入するため、シードを固定すれば結果は再現可能です。
package factory

import (
	"sync"
	"sync/atomic"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/brianvoe/gofakeit/v6/data"
)

// Factory はフィクスチャ生成器です。複数のゴルーチンから同時に使用できます。
type Factory struct {
	faker *gofakeit.Faker
	seq   atomic.Int64

	hashOnce    sync.Once
	defaultHash string
	hashErr     error
}

// New は新しいFactoryを作成します。seed が 0 の場合は crypto/rand からシードを取得します。
func New(seed int64) *Factory {
	return NewWithFaker(gofakeit.New(seed))
}

// NewWithFaker は既存のFakerを乱数源として使うFactoryを作成します。
func NewWithFaker(faker *gofakeit.Faker) *Factory {
	return &Factory{faker: faker}
}

// LoremWords は名前生成に使う単語コーパスのコピーを返します。
func LoremWords() []string {
	words := make([]string, len(loremWords))
	copy(words, loremWords)
	return words
}

var loremWords = data.Lorem["word"]

// next はユニーク値のための連番を返します。
func (f *Factory) next() int64 {
	return f.seq.Add(1)
}
