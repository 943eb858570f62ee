package seed

import (
	"context"
	"time"

	"lawfirm-backend/internal/domains/blog"
)

func strPtr(s string) *string { return &s }

// BlogPosts returns the sample articles installed at startup. Likes start at
// zero so the cached counter and the like rows agree from the first request.
func BlogPosts() []blog.Post {
	return []blog.Post{
		{
			ID:    "1",
			Title: "Novas Regras do Trabalho Remoto: O que sua Empresa Precisa Saber",
			Content: `
<p>Com as mudanças na legislação trabalhista, o trabalho remoto ganhou novas regulamentações que impactam diretamente empresas e funcionários. Este artigo analisa as principais alterações e suas implicações práticas.</p>

<h3>Principais Mudanças</h3>
<p>A Lei 14.442/2022 trouxe importantes modificações na CLT, estabelecendo regras específicas para o trabalho remoto, incluindo:</p>
<ul>
<li>Definição clara de trabalho remoto vs. home office</li>
<li>Responsabilidades sobre equipamentos e infraestrutura</li>
<li>Controle de jornada e direito à desconexão</li>
<li>Políticas de reembolso de despesas</li>
</ul>

<h3>Impactos para Empresas</h3>
<p>As organizações precisam se adaptar às novas exigências, incluindo a elaboração de políticas internas claras e a implementação de controles adequados.</p>
			`,
			Excerpt:   "Análise completa das mudanças na legislação trabalhista para modalidade home office e trabalho híbrido.",
			Category:  "Direito do Trabalho",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1556157382-97eda2d62296?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"),
			ReadTime:  "5 min",
			Published: true,
			CreatedAt: time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:    "2",
			Title: "Aposentadoria Especial: Guia Completo para Profissionais da Saúde",
			Content: `
<p>A aposentadoria especial é um benefício previdenciário destinado aos trabalhadores expostos a agentes nocivos à saúde. Para profissionais da área da saúde, existem critérios específicos que precisam ser observados.</p>

<h3>Requisitos Essenciais</h3>
<p>Para ter direito à aposentadoria especial, o profissional de saúde deve comprovar:</p>
<ul>
<li>Tempo de contribuição específico (25 anos para a maioria dos casos)</li>
<li>Exposição permanente aos agentes nocivos</li>
<li>Documentação adequada (PPP, LTCAT, etc.)</li>
</ul>

<h3>Documentação Necessária</h3>
<p>A documentação é fundamental para o sucesso do pedido. Inclui laudos técnicos, perfil profissiográfico e comprovação da exposição aos riscos.</p>
			`,
			Excerpt:   "Entenda os requisitos e documentações necessárias para conquistar sua aposentadoria especial.",
			Category:  "Direito Previdenciário",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1589994965851-a8f479c573a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"),
			ReadTime:  "8 min",
			Published: true,
			CreatedAt: time.Date(2024, 12, 12, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 12, 12, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:    "3",
			Title: "Divórcio Consensual: Passo a Passo para um Processo Mais Rápido",
			Content: `
<p>O divórcio consensual é uma modalidade que permite a dissolução do casamento de forma mais ágil e menos conflituosa, quando há acordo entre os cônjuges sobre todos os aspectos da separação.</p>

<h3>Vantagens do Divórcio Consensual</h3>
<ul>
<li>Processo mais rápido e econômico</li>
<li>Menor desgaste emocional</li>
<li>Maior controle sobre as decisões</li>
<li>Possibilidade de realização em cartório</li>
</ul>

<h3>Requisitos Necessários</h3>
<p>Para optar pelo divórcio consensual, é necessário que os cônjuges estejam em acordo sobre:</p>
<ul>
<li>Divisão dos bens</li>
<li>Guarda dos filhos menores</li>
<li>Pensão alimentícia</li>
<li>Outras questões patrimoniais</li>
</ul>
			`,
			Excerpt:   "Conheça as vantagens do divórcio consensual e como tornar o processo mais ágil e menos desgastante.",
			Category:  "Direito de Família e Sucessão",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1582213782179-e0d53f98f2ca?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"),
			ReadTime:  "6 min",
			Published: true,
			CreatedAt: time.Date(2024, 12, 10, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 12, 10, 9, 15, 0, 0, time.UTC),
		},
	}
}

// Load installs the sample posts into the repository.
func Load(ctx context.Context, repo blog.Repository) error {
	for _, post := range BlogPosts() {
		p := post
		if err := repo.CreatePost(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
